package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash"}).
		AddRow("user-id", "A", "a@x.com", "hashed")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("a@x.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, "user-id", user.ID)
	require.Equal(t, "a@x.com", user.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("nobody@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash"}))

	_, err := repo.FindByEmail("nobody@x.com")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash"}).
		AddRow("user-id", "A", "a@x.com", "old-hash")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("a@x.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)

	user.PasswordHash = "new-hash"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(user))
	require.NoError(t, mock.ExpectationsWereMet())
}
