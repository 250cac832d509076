package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

func newIncomeRouter(incomes *mockIncomeService) *gin.Engine {
	handler := NewIncomeHandler(incomes)
	router := gin.New()
	group := router.Group("/income", injectUserID(1))
	group.POST("", handler.CreateIncome)
	return router
}

func TestIncomeHandler_CreateIncome(t *testing.T) {
	t.Run("returns 201 with income", func(t *testing.T) {
		incomes := &mockIncomeService{
			createFn: func(userID uint, name string, amount float64, description string) (*models.Income, error) {
				income := &models.Income{UserID: &userID, Name: name, Amount: amount, Description: description}
				income.ID = 21
				return income, nil
			},
		}
		router := newIncomeRouter(incomes)

		w := doRequest(t, router, http.MethodPost, "/income", gin.H{
			"name":   "Paycheck",
			"amount": 2000,
		})
		assertStatus(t, w, http.StatusCreated)

		income, ok := parseJSON(t, w)["income"].(map[string]interface{})
		if !ok {
			t.Fatal("expected income object in response")
		}
		if income["amount"] != float64(2000) {
			t.Errorf("expected amount 2000, got %v", income["amount"])
		}
	})

	t.Run("accepts a negative amount", func(t *testing.T) {
		incomes := &mockIncomeService{
			createFn: func(userID uint, name string, amount float64, description string) (*models.Income, error) {
				income := &models.Income{UserID: &userID, Name: name, Amount: amount}
				income.ID = 22
				return income, nil
			},
		}
		router := newIncomeRouter(incomes)

		w := doRequest(t, router, http.MethodPost, "/income", gin.H{
			"name":   "Correction",
			"amount": -150.25,
		})
		assertStatus(t, w, http.StatusCreated)

		income, ok := parseJSON(t, w)["income"].(map[string]interface{})
		if !ok {
			t.Fatal("expected income object in response")
		}
		if income["amount"] != -150.25 {
			t.Errorf("expected amount -150.25, got %v", income["amount"])
		}
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		router := newIncomeRouter(&mockIncomeService{})

		w := doRequest(t, router, http.MethodPost, "/income", gin.H{
			"name":   "this income name is far too long for the thirty character cap",
			"amount": 10,
		})
		assertErrorCode(t, w, http.StatusBadRequest, apperrors.ErrInvalidInput.Code)
	})
}
