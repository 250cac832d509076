package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService  services.ExpenseServicer
	categoryService services.CategoryServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, categoryService services.CategoryServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, categoryService: categoryService}
}

// ExpenseRequest represents the request payload for creating or replacing an
// expense. Updates are full replacements, so every field is carried.
type ExpenseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// exportHeader is the column order of both the CSV and XLSX exports.
var exportHeader = []string{"name", "category", "amount", "description", "budget"}

// GetMonthlyExpenses lists the current month's expenses, newest first
// @Summary     Get current-month expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "List of expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense [get]
func (h *ExpenseHandler) GetMonthlyExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetMonthlyExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense creates a new expense dated now
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /expense [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, req.Name, req.Amount, req.Description, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenseByID returns one expense
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]interface{} "Expense details"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DuplicateExpense copies an expense, dated now
// @Summary     Duplicate expense
// @Description Create a copy of an existing expense with the duplication time as its date
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     201 {object} map[string]interface{} "Duplicated expense"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [post]
func (h *ExpenseHandler) DuplicateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.DuplicateExpense(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// UpdateExpense replaces an expense's fields
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body ExpenseRequest true "Replacement expense details"
// @Success     200 {object} map[string]interface{} "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, req.Name, req.Amount, req.Description, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ExportCSV streams the current month's expenses as a CSV attachment
// @Summary     Export expenses as CSV
// @Description Download the current month's expenses with their category and its budget
// @Tags        expenses
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense/export-csv [get]
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.exportRows(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=expenses.csv`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}
	w.Flush()
}

// ExportXLSX streams the current month's expenses as an Excel workbook
// @Summary     Export expenses as XLSX
// @Description Download the current month's expenses as a spreadsheet
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Success     200 {string} string "XLSX file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense/export-xlsx [get]
func (h *ExpenseHandler) ExportXLSX(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.exportRows(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
				return
			}
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename=expenses.xlsx`)

	if err := f.Write(c.Writer); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
}

// exportRows builds one row per current-month expense, joining in the owning
// category's name and budget. Nil budgets export as empty cells.
func (h *ExpenseHandler) exportRows(userID uint) ([][]string, error) {
	expenses, err := h.expenseService.GetMonthlyExpenses(userID)
	if err != nil {
		return nil, err
	}

	categories, err := h.categoryService.GetUserCategories(userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	rows := make([][]string, 0, len(expenses))
	for _, expense := range expenses {
		category := byID[expense.CategoryID]
		budget := ""
		if category.Budget != nil {
			budget = strconv.FormatFloat(*category.Budget, 'f', -1, 64)
		}
		rows = append(rows, []string{
			expense.Name,
			category.Name,
			strconv.FormatFloat(expense.Amount, 'f', -1, 64),
			expense.Description,
			budget,
		})
	}
	return rows, nil
}
