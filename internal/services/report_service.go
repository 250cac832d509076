package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Selectable record kinds for the date-range report.
const (
	SelectExpense = "expense"
	SelectIncome  = "income"
)

const investmentReportWindow = 30 * 24 * time.Hour

// reportService composes the other services into read-only aggregates.
type reportService struct {
	db          *gorm.DB
	expenses    ExpenseServicer
	incomes     IncomeServicer
	categories  CategoryServicer
	investments InvestmentServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, expenses ExpenseServicer, incomes IncomeServicer, categories CategoryServicer, investments InvestmentServicer) ReportServicer {
	return &reportService{
		db:          db,
		expenses:    expenses,
		incomes:     incomes,
		categories:  categories,
		investments: investments,
	}
}

// DateRange returns the filtered records plus their total for one record
// kind over an inclusive date range.
func (s *reportService) DateRange(userID uint, from, to time.Time, selectKind string) (*DateRangeReport, error) {
	switch selectKind {
	case SelectExpense:
		filtered, err := s.expenses.ExpensesBetween(userID, from, to)
		if err != nil {
			return nil, err
		}
		total, err := s.expenses.TotalBetween(userID, from, to)
		if err != nil {
			return nil, err
		}
		return &DateRangeReport{Filtered: filtered, Total: total}, nil

	case SelectIncome:
		filtered, err := s.incomes.IncomesBetween(userID, from, to)
		if err != nil {
			return nil, err
		}
		total, err := s.incomes.TotalBetween(userID, from, to)
		if err != nil {
			return nil, err
		}
		return &DateRangeReport{Filtered: filtered, Total: total}, nil
	}

	return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Results not found, invalid parameters")
}

// CategoryBreakdown pairs each of the user's current-month categories with
// its total expense cost.
func (s *reportService) CategoryBreakdown(userID uint) ([]CategoryAmount, error) {
	categories, err := s.categories.GetUserCategories(userID)
	if err != nil {
		return nil, err
	}

	start, end := currentMonthRange(time.Now())
	breakdown := make([]CategoryAmount, 0, len(categories))
	for _, c := range categories {
		if c.Date.Before(start) || !c.Date.Before(end) {
			continue
		}
		breakdown = append(breakdown, CategoryAmount{Category: c.Name, Amount: c.TotalExpenseCost})
	}
	return breakdown, nil
}

// WeeklyExpenseGraph returns the all-time weekly expense buckets. Both the
// day-graph and week-graph routes serve this single aggregate.
func (s *reportService) WeeklyExpenseGraph(userID uint) ([]WeekTotal, error) {
	return s.expenses.WeeklyTotals(userID)
}

// MonthlyExpenseGraph returns the all-time monthly expense buckets.
func (s *reportService) MonthlyExpenseGraph(userID uint) ([]MonthTotal, error) {
	return s.expenses.MonthlyTotals(userID)
}

// MostRecentExpenses returns the five newest expenses of the current month.
func (s *reportService) MostRecentExpenses(userID uint) ([]models.Expense, error) {
	expenses, err := s.expenses.GetMonthlyExpenses(userID)
	if err != nil {
		return nil, err
	}
	if len(expenses) > 5 {
		expenses = expenses[:5]
	}
	return expenses, nil
}

// NetSummary merges the expense month summary with the count of categories
// the user created (or touched) this month.
func (s *reportService) NetSummary(userID uint) (*NetSummary, error) {
	summary, err := s.expenses.NetForMonth(userID)
	if err != nil {
		return nil, err
	}

	start, end := currentMonthRange(time.Now())
	var categoryCount int64
	err = s.db.Model(&models.Category{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&categoryCount).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.CategoryCount = categoryCount
	return summary, nil
}

// PortfolioSummaries returns the user's portfolios with derived performance
// fields.
func (s *reportService) PortfolioSummaries(userID uint) ([]models.Portfolio, error) {
	return s.investments.GetUserPortfolios(userID)
}

// WeeklyInvestments buckets the trailing 30 days of investment amounts by
// week, oldest first.
func (s *reportService) WeeklyInvestments(userID uint) ([]WeekTotal, error) {
	investments, err := s.investments.InvestmentsSince(userID, time.Now().Add(-investmentReportWindow))
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]float64)
	for _, inv := range investments {
		key := weekStart(inv.DateInvested).Format(time.DateOnly)
		buckets[key] += inv.Amount
	}

	totals := make([]WeekTotal, 0, len(buckets))
	for week, total := range buckets {
		totals = append(totals, WeekTotal{Week: week, Total: round2(total)})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Week < totals[j].Week })
	return totals, nil
}

// TotalInvestments sums the trailing 30 days of investment amounts.
func (s *reportService) TotalInvestments(userID uint) (float64, error) {
	investments, err := s.investments.InvestmentsSince(userID, time.Now().Add(-investmentReportWindow))
	if err != nil {
		return 0, err
	}

	var total float64
	for _, inv := range investments {
		total += inv.Amount
	}
	return round2(total), nil
}
