package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"postboard/internal/model"
	"postboard/internal/repository"
)

const (
	testJWTSecret = "test-secret"
	testTokenTTL  = time.Hour
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Vote{}))
	return db
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testJWTSecret, testTokenTTL)
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user, err := newTestAuthService(db).Register(RegisterInput{Email: email, Password: "secret1"})
	require.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, ownerID uint, title string) *model.Post {
	t.Helper()
	svc := NewPostService(repository.NewPostRepository(db))
	post, err := svc.Create(ownerID, PostInput{Title: title, Content: "content of " + title, Published: true})
	require.NoError(t, err)
	return post
}
