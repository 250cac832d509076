package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// ReportHandler handles the read-only reporting endpoints.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DateRangeRequest represents the query parameters of the date-range report.
// The select kind is validated by the service so an unknown kind reads as
// not-found rather than a binding failure.
type DateRangeRequest struct {
	From   string `form:"from_date" binding:"required,dateonly"`
	To     string `form:"to_date" binding:"required,dateonly"`
	Select string `form:"select" binding:"required"`
}

// DateRange returns expenses or incomes over an inclusive date range
// @Summary     Date-range report
// @Description Filter expenses or incomes between two dates (inclusive) and sum them
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string true "Start date (YYYY-MM-DD)"
// @Param       to_date query string true "End date (YYYY-MM-DD)"
// @Param       select query string true "Record kind (expense or income)"
// @Success     200 {object} services.DateRangeReport "Filtered records and total"
// @Failure     400 {object} ErrorResponse "Invalid parameters"
// @Failure     404 {object} ErrorResponse "Unknown record kind"
// @Router      /report-date-range [get]
func (h *ReportHandler) DateRange(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := time.Parse(time.DateOnly, req.From)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date"))
		return
	}
	to, err := time.Parse(time.DateOnly, req.To)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date"))
		return
	}

	report, err := h.reportService.DateRange(userID, from, to, req.Select)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// CategoryBreakdown pairs each current-month category with its spend
// @Summary     Category spend report
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Per-category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-category [get]
func (h *ReportHandler) CategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.CategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// WeeklyExpenseGraph returns weekly expense buckets
// @Summary     Weekly expense graph
// @Description All-time expense totals bucketed by the Monday each week starts on
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Weekly buckets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-week-graph [get]
func (h *ReportHandler) WeeklyExpenseGraph(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.WeeklyExpenseGraph(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": totals})
}

// MonthlyExpenseGraph returns monthly expense buckets
// @Summary     Monthly expense graph
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Monthly buckets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-month-graph [get]
func (h *ReportHandler) MonthlyExpenseGraph(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.MonthlyExpenseGraph(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": totals})
}

// MostRecentExpenses returns the five newest current-month expenses
// @Summary     Most recent expenses
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Up to five expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-most-recent-expenses [get]
func (h *ReportHandler) MostRecentExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.reportService.MostRecentExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// NetSummary returns the current-month spending summary
// @Summary     Net spending summary
// @Description Current-month expense total, expense count, and category count
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.NetSummary "Month summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-net [get]
func (h *ReportHandler) NetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.NetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// PortfolioSummaries returns the user's portfolios with performance fields
// @Summary     Portfolio report
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Portfolios with performance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-portfolios [get]
func (h *ReportHandler) PortfolioSummaries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolios, err := h.reportService.PortfolioSummaries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolios": portfolios})
}

// WeeklyInvestments buckets the trailing 30 days of investments by week
// @Summary     Weekly investment report
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Weekly investment buckets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-weekly-investments [get]
func (h *ReportHandler) WeeklyInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.WeeklyInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": totals})
}

// TotalInvestments sums the trailing 30 days of investments
// @Summary     Total investment report
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Trailing 30-day total"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /report-total-investments [get]
func (h *ReportHandler) TotalInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.reportService.TotalInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
