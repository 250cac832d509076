package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

func newExpenseRouter(expenses *mockExpenseService, categories *mockCategoryService) *gin.Engine {
	handler := NewExpenseHandler(expenses, categories)
	router := gin.New()
	group := router.Group("/expense", injectUserID(1))
	group.GET("", handler.GetMonthlyExpenses)
	group.POST("", handler.CreateExpense)
	group.GET("/export-csv", handler.ExportCSV)
	group.GET("/export-xlsx", handler.ExportXLSX)
	group.GET("/:id", handler.GetExpenseByID)
	group.POST("/:id", handler.DuplicateExpense)
	group.PUT("/:id", handler.UpdateExpense)
	group.DELETE("/:id", handler.DeleteExpense)
	return router
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 with expense", func(t *testing.T) {
		expenses := &mockExpenseService{
			createFn: func(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error) {
				expense := &models.Expense{UserID: &userID, Name: name, Amount: amount, CategoryID: categoryID}
				expense.ID = 11
				return expense, nil
			},
		}
		router := newExpenseRouter(expenses, &mockCategoryService{})

		w := doRequest(t, router, http.MethodPost, "/expense", gin.H{
			"name":        "Lunch",
			"amount":      12.5,
			"category_id": 2,
		})
		assertStatus(t, w, http.StatusCreated)

		body := parseJSON(t, w)
		expense, ok := body["expense"].(map[string]interface{})
		if !ok {
			t.Fatal("expected expense object in response")
		}
		if expense["amount"] != 12.5 {
			t.Errorf("expected amount 12.5, got %v", expense["amount"])
		}
	})

	t.Run("accepts a negative amount", func(t *testing.T) {
		expenses := &mockExpenseService{
			createFn: func(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error) {
				expense := &models.Expense{UserID: &userID, Name: name, Amount: amount, CategoryID: categoryID}
				expense.ID = 12
				return expense, nil
			},
		}
		router := newExpenseRouter(expenses, &mockCategoryService{})

		w := doRequest(t, router, http.MethodPost, "/expense", gin.H{
			"name":        "Refund",
			"amount":      -4.2,
			"category_id": 2,
		})
		assertStatus(t, w, http.StatusCreated)

		expense, ok := parseJSON(t, w)["expense"].(map[string]interface{})
		if !ok {
			t.Fatal("expected expense object in response")
		}
		if expense["amount"] != -4.2 {
			t.Errorf("expected amount -4.2, got %v", expense["amount"])
		}
	})

	t.Run("rejects missing category", func(t *testing.T) {
		router := newExpenseRouter(&mockExpenseService{}, &mockCategoryService{})

		w := doRequest(t, router, http.MethodPost, "/expense", gin.H{
			"name":   "Lunch",
			"amount": 12.5,
		})
		assertErrorCode(t, w, http.StatusBadRequest, apperrors.ErrInvalidInput.Code)
	})
}

func TestExpenseHandler_DuplicateExpense(t *testing.T) {
	var duplicatedID uint
	expenses := &mockExpenseService{
		duplicateFn: func(userID, expenseID uint) (*models.Expense, error) {
			duplicatedID = expenseID
			expense := &models.Expense{UserID: &userID, Name: "Copy"}
			expense.ID = 99
			return expense, nil
		},
	}
	router := newExpenseRouter(expenses, &mockCategoryService{})

	w := doRequest(t, router, http.MethodPost, "/expense/5", nil)
	assertStatus(t, w, http.StatusCreated)

	if duplicatedID != 5 {
		t.Errorf("expected duplication of expense 5, got %d", duplicatedID)
	}
}

func TestExpenseHandler_ExportCSV(t *testing.T) {
	budget := 100.0
	category := models.Category{Name: "Food and Drinks", Budget: &budget}
	category.ID = 2

	bare := models.Category{Name: "Transport"}
	bare.ID = 3

	userID := uint(1)
	first := models.Expense{UserID: &userID, Name: "Lunch", Amount: 12.5, Description: "sandwich", CategoryID: 2}
	first.ID = 10
	second := models.Expense{UserID: &userID, Name: "Bus", Amount: 2.75, CategoryID: 3}
	second.ID = 9

	expenses := &mockExpenseService{
		getMonthlyFn: func(uID uint) ([]models.Expense, error) {
			return []models.Expense{first, second}, nil
		},
	}
	categories := &mockCategoryService{
		getUserCategoriesFn: func(uID uint) ([]models.Category, error) {
			return []models.Category{category, bare}, nil
		},
	}
	router := newExpenseRouter(expenses, categories)

	w := doRequest(t, router, http.MethodGet, "/expense/export-csv", nil)
	assertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses.csv") {
		t.Errorf("expected attachment filename, got %s", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "name,category,amount,description,budget" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "Lunch,Food and Drinks,12.5,sandwich,100" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if lines[2] != "Bus,Transport,2.75,," {
		t.Errorf("expected empty description and budget cells, got: %s", lines[2])
	}
}

func TestExpenseHandler_ExportXLSX(t *testing.T) {
	expenses := &mockExpenseService{
		getMonthlyFn: func(uID uint) ([]models.Expense, error) {
			return nil, nil
		},
	}
	categories := &mockCategoryService{
		getUserCategoriesFn: func(uID uint) ([]models.Category, error) {
			return nil, nil
		},
	}
	router := newExpenseRouter(expenses, categories)

	w := doRequest(t, router, http.MethodGet, "/expense/export-xlsx", nil)
	assertStatus(t, w, http.StatusOK)

	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses.xlsx") {
		t.Errorf("expected attachment filename, got %s", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("expected a non-empty workbook body")
	}
}

func TestExpenseHandler_GetExpenseByID(t *testing.T) {
	t.Run("propagates not found", func(t *testing.T) {
		expenses := &mockExpenseService{
			getByIDFn: func(userID, expenseID uint) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		router := newExpenseRouter(expenses, &mockCategoryService{})

		w := doRequest(t, router, http.MethodGet, "/expense/404", nil)
		assertErrorCode(t, w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Code)
	})

	t.Run("propagates forbidden", func(t *testing.T) {
		expenses := &mockExpenseService{
			getByIDFn: func(userID, expenseID uint) (*models.Expense, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		router := newExpenseRouter(expenses, &mockCategoryService{})

		w := doRequest(t, router, http.MethodGet, "/expense/7", nil)
		assertErrorCode(t, w, http.StatusForbidden, apperrors.ErrForbidden.Code)
	})
}
