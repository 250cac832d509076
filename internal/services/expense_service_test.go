package services

import (
	"testing"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/testutil"
)

func TestExpenseService_CreateExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	t.Run("creates expense dated now", func(t *testing.T) {
		expense, err := service.CreateExpense(user.ID, "Lunch", 12.50, "sandwich", category.ID)
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Error("expected expense ID to be set")
		}
		if expense.Amount != 12.50 {
			t.Errorf("expected amount 12.50, got %v", expense.Amount)
		}
		if time.Since(expense.Date) > time.Minute {
			t.Errorf("expected expense date near now, got %v", expense.Date)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := service.CreateExpense(user.ID, "", 5, "", category.ID)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := service.CreateExpense(user.ID, "Lunch", 5, "", 99999)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	})
}

func TestExpenseService_GetMonthlyExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	first := testutil.CreateTestExpense(t, db, user.ID, category.ID, 10)
	second := testutil.CreateTestExpense(t, db, user.ID, category.ID, 20)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 99, time.Now().AddDate(0, 0, -62))

	otherUser := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpense(t, db, otherUser.ID, category.ID, 77)

	expenses, err := service.GetMonthlyExpenses(user.ID)
	testutil.AssertNoError(t, err)

	if len(expenses) != 2 {
		t.Fatalf("expected 2 current-month expenses, got %d", len(expenses))
	}
	if expenses[0].ID != second.ID || expenses[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %d then %d", expenses[0].ID, expenses[1].ID)
	}
}

func TestExpenseService_DuplicateExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)
	source := testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 42, time.Now().AddDate(0, 0, -10))

	duplicate, err := service.DuplicateExpense(user.ID, source.ID)
	testutil.AssertNoError(t, err)

	t.Run("copies fields into a new row", func(t *testing.T) {
		if duplicate.ID == source.ID {
			t.Error("duplicate must be a distinct row")
		}
		if duplicate.Name != source.Name || duplicate.Amount != source.Amount || duplicate.CategoryID != source.CategoryID {
			t.Error("duplicate fields do not match source")
		}
	})

	t.Run("is dated at duplication time", func(t *testing.T) {
		if time.Since(duplicate.Date) > time.Minute {
			t.Errorf("expected duplicate dated now, got %v", duplicate.Date)
		}
	})

	t.Run("leaves the source untouched", func(t *testing.T) {
		reloaded, err := service.GetExpenseByID(user.ID, source.ID)
		testutil.AssertNoError(t, err)
		if !reloaded.Date.Equal(source.Date) && time.Since(reloaded.Date) < time.Minute {
			t.Error("source expense date was modified")
		}
	})
}

func TestExpenseService_Ownership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, owner.ID)
	expense := testutil.CreateTestExpense(t, db, owner.ID, category.ID, 10)

	t.Run("missing expense is not found", func(t *testing.T) {
		_, err := service.GetExpenseByID(owner.ID, 99999)
		testutil.AssertAppError(t, err, apperrors.ErrExpenseNotFound.Code)
	})

	t.Run("another user's expense is forbidden", func(t *testing.T) {
		_, err := service.GetExpenseByID(other.ID, expense.ID)
		testutil.AssertAppError(t, err, apperrors.ErrForbidden.Code)
	})

	t.Run("forbidden delete does not remove", func(t *testing.T) {
		err := service.DeleteExpense(other.ID, expense.ID)
		testutil.AssertAppError(t, err, apperrors.ErrForbidden.Code)

		_, err = service.GetExpenseByID(owner.ID, expense.ID)
		testutil.AssertNoError(t, err)
	})
}

func TestExpenseService_TotalBetween(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	day := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 10.10, day)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 5.25, day.Add(2*time.Hour))
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 99, day.AddDate(0, 0, 3))

	t.Run("single day range covers the whole day", func(t *testing.T) {
		total, err := service.TotalBetween(user.ID, day, day)
		testutil.AssertNoError(t, err)
		if total != 15.35 {
			t.Errorf("expected 15.35, got %v", total)
		}
	})

	t.Run("inclusive end date", func(t *testing.T) {
		total, err := service.TotalBetween(user.ID, day, day.AddDate(0, 0, 3))
		testutil.AssertNoError(t, err)
		if total != 114.35 {
			t.Errorf("expected 114.35, got %v", total)
		}
	})

	t.Run("empty range sums to zero", func(t *testing.T) {
		total, err := service.TotalBetween(user.ID, day.AddDate(1, 0, 0), day.AddDate(1, 0, 1))
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected 0, got %v", total)
		}
	})
}

func TestExpenseService_WeeklyTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	// 2026-03-09 is a Monday.
	monday := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 10, monday)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 20, monday.AddDate(0, 0, 6))
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 5, monday.AddDate(0, 0, 7))

	totals, err := service.WeeklyTotals(user.ID)
	testutil.AssertNoError(t, err)

	if len(totals) != 2 {
		t.Fatalf("expected 2 week buckets, got %d", len(totals))
	}
	if totals[0].Week != "2026-03-09" || totals[0].Total != 30 {
		t.Errorf("unexpected first bucket: %+v", totals[0])
	}
	if totals[1].Week != "2026-03-16" || totals[1].Total != 5 {
		t.Errorf("unexpected second bucket: %+v", totals[1])
	}
}

func TestExpenseService_MonthlyTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 10, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 15, time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 7, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	totals, err := service.MonthlyTotals(user.ID)
	testutil.AssertNoError(t, err)

	if len(totals) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(totals))
	}
	if totals[0].Month != "2026-01-01" || totals[0].Total != 25 {
		t.Errorf("unexpected first bucket: %+v", totals[0])
	}
	if totals[1].Month != "2026-02-01" || totals[1].Total != 7 {
		t.Errorf("unexpected second bucket: %+v", totals[1])
	}
}

func TestExpenseService_NetForMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	testutil.CreateTestExpense(t, db, user.ID, category.ID, 10.5)
	testutil.CreateTestExpense(t, db, user.ID, category.ID, 4.5)
	testutil.CreateTestExpenseOn(t, db, user.ID, category.ID, 99, time.Now().AddDate(0, 0, -40))

	summary, err := service.NetForMonth(user.ID)
	testutil.AssertNoError(t, err)

	if summary.TotalExpense != 15 {
		t.Errorf("expected total 15, got %v", summary.TotalExpense)
	}
	if summary.ExpenseCount != 2 {
		t.Errorf("expected count 2, got %d", summary.ExpenseCount)
	}
	if summary.Month != time.Now().Format("2006-01") {
		t.Errorf("expected current month key, got %s", summary.Month)
	}
}
