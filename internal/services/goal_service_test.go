package services

import (
	"testing"

	"budgetly/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Food & Dining", 30000, "")
		testutil.AssertNoError(t, err)

		if goal.ID == 0 {
			t.Fatal("expected non-zero goal ID")
		}
		if goal.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", goal.Currency)
		}
	})

	t.Run("duplicate_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "Travel", 30000, "USD")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateGoal(user.ID, "Travel", 50000, "USD")
		testutil.AssertAppError(t, err, "DUPLICATE_GOAL")
	})

	t.Run("same_category_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user1.ID, "Travel", 30000, "USD")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateGoal(user2.ID, "Travel", 30000, "USD")
		testutil.AssertNoError(t, err)
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "Travel", 0, "USD")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreateGoal(user.ID, "", 1000, "USD")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("updates_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, "Shopping", 30000)

		newLimit := int64(45000)
		updated, err := svc.UpdateGoal(user.ID, goal.ID, &newLimit, "")
		testutil.AssertNoError(t, err)

		if updated.LimitCents != 45000 {
			t.Errorf("expected limit 45000, got %d", updated.LimitCents)
		}
	})

	t.Run("rejects_non_positive_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, "Shopping", 30000)

		zero := int64(0)
		_, err := svc.UpdateGoal(user.ID, goal.ID, &zero, "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user1.ID, "Shopping", 30000)

		limit := int64(1000)
		_, err := svc.UpdateGoal(user2.ID, goal.ID, &limit, "")
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("deletes_and_frees_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, "Shopping", 30000)

		testutil.AssertNoError(t, svc.DeleteGoal(user.ID, goal.ID))

		goals, err := svc.GetUserGoals(user.ID)
		testutil.AssertNoError(t, err)
		if len(goals) != 0 {
			t.Errorf("expected no goals after delete, got %d", len(goals))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteGoal(user.ID, 9999)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestGetUserGoals(t *testing.T) {
	t.Run("ordered_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user.ID, "Travel", 10000)
		testutil.CreateTestGoal(t, db, user.ID, "Food & Dining", 20000)

		goals, err := svc.GetUserGoals(user.ID)
		testutil.AssertNoError(t, err)

		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].Category != "Food & Dining" {
			t.Errorf("expected goals ordered by category, got %s first", goals[0].Category)
		}
	})
}
