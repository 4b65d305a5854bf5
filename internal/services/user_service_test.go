package services

import (
	"testing"

	"gorm.io/gorm"

	"budgetly/internal/models"
	"budgetly/internal/testutil"
)

func newTestUserService(db *gorm.DB) UserServicer {
	return NewUserService(db, NewCategoryService(db))
}

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		user, err := svc.CreateUser("new@example.com", "password123", "Ada", "Lovelace")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Password == "password123" {
			t.Error("password should be stored hashed")
		}
	})

	t.Run("seeds_default_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		user, err := svc.CreateUser("seeded@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&count)
		if count != int64(len(models.DefaultCategories)) {
			t.Errorf("expected %d seeded categories, got %d", len(models.DefaultCategories), count)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUP@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreateUser("nopass@example.com", "", "", "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestUserService(db)

	user, err := svc.CreateUser("verify@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpassword") {
		t.Error("expected wrong password to fail")
	}

	reloaded, err := svc.GetUserByID(user.ID)
	testutil.AssertNoError(t, err)
	if reloaded.LastLoginAt == nil {
		t.Error("expected last login time to be recorded on success")
	}
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		created, err := svc.CreateUser("mixed@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		found, err := svc.GetUserByEmail("MIXED@example.com")
		testutil.AssertNoError(t, err)
		if found.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestUserService(db)

		_, err := svc.GetUserByEmail("ghost@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestUserService(db)

	user, err := svc.CreateUser("refresh@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("expected stored hash abc123, got %s", hash)
	}

	_, err = svc.GetRefreshTokenHash(9999)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
