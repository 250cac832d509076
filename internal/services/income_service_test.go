package services

import (
	"testing"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/testutil"
)

func TestIncomeService_CreateIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("creates income dated now", func(t *testing.T) {
		income, err := service.CreateIncome(user.ID, "Salary", 3000, "monthly")
		testutil.AssertNoError(t, err)

		if income.ID == 0 {
			t.Error("expected income ID to be set")
		}
		if income.Amount != 3000 {
			t.Errorf("expected amount 3000, got %v", income.Amount)
		}
		if time.Since(income.Date) > time.Minute {
			t.Errorf("expected income date near now, got %v", income.Date)
		}
	})

	t.Run("empty name falls back to default", func(t *testing.T) {
		income, err := service.CreateIncome(user.ID, "", 100, "")
		testutil.AssertNoError(t, err)
		if income.Name != "Income" {
			t.Errorf("expected default name Income, got %s", income.Name)
		}
	})
}

func TestIncomeService_GetMonthlyIncomes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)

	first := testutil.CreateTestIncome(t, db, user.ID, 100)
	second := testutil.CreateTestIncome(t, db, user.ID, 200)
	testutil.CreateTestIncomeOn(t, db, user.ID, 999, time.Now().AddDate(0, 0, -40))

	incomes, err := service.GetMonthlyIncomes(user.ID)
	testutil.AssertNoError(t, err)

	if len(incomes) != 2 {
		t.Fatalf("expected 2 current-month incomes, got %d", len(incomes))
	}
	if incomes[0].ID != second.ID || incomes[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %d then %d", incomes[0].ID, incomes[1].ID)
	}
}

func TestIncomeService_DuplicateIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)
	source := testutil.CreateTestIncomeOn(t, db, user.ID, 250, time.Now().AddDate(0, 0, -5))

	duplicate, err := service.DuplicateIncome(user.ID, source.ID)
	testutil.AssertNoError(t, err)

	if duplicate.ID == source.ID {
		t.Error("duplicate must be a distinct row")
	}
	if duplicate.Name != source.Name || duplicate.Amount != source.Amount {
		t.Error("duplicate fields do not match source")
	}
	if time.Since(duplicate.Date) > time.Minute {
		t.Errorf("expected duplicate dated now, got %v", duplicate.Date)
	}
}

func TestIncomeService_Ownership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewIncomeService(db)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	income := testutil.CreateTestIncome(t, db, owner.ID, 100)

	t.Run("missing income is not found", func(t *testing.T) {
		_, err := service.GetIncomeByID(owner.ID, 99999)
		testutil.AssertAppError(t, err, apperrors.ErrIncomeNotFound.Code)
	})

	t.Run("another user's income is forbidden", func(t *testing.T) {
		_, err := service.GetIncomeByID(other.ID, income.ID)
		testutil.AssertAppError(t, err, apperrors.ErrForbidden.Code)
	})

	t.Run("forbidden delete does not remove", func(t *testing.T) {
		err := service.DeleteIncome(other.ID, income.ID)
		testutil.AssertAppError(t, err, apperrors.ErrForbidden.Code)

		_, err = service.GetIncomeByID(owner.ID, income.ID)
		testutil.AssertNoError(t, err)
	})
}

func TestIncomeService_TotalBetween(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)

	day := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	testutil.CreateTestIncomeOn(t, db, user.ID, 1000.55, day)
	testutil.CreateTestIncomeOn(t, db, user.ID, 500, day.AddDate(0, 0, 1))

	t.Run("single day range", func(t *testing.T) {
		total, err := service.TotalBetween(user.ID, day, day)
		testutil.AssertNoError(t, err)
		if total != 1000.55 {
			t.Errorf("expected 1000.55, got %v", total)
		}
	})

	t.Run("inclusive range", func(t *testing.T) {
		total, err := service.TotalBetween(user.ID, day, day.AddDate(0, 0, 1))
		testutil.AssertNoError(t, err)
		if total != 1500.55 {
			t.Errorf("expected 1500.55, got %v", total)
		}
	})
}
