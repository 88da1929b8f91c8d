package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Create(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "password", "role", "created_at"}).
			AddRow("u-1", "Ravi", "ravi@example.com", "+91 90000 00000", "hashed", "USER", now)

		mockDB.ExpectQuery(`INSERT INTO users`).
			WithArgs("u-1", "Ravi", "ravi@example.com", "+91 90000 00000", "hashed", RoleUser).
			WillReturnRows(rows)

		u, err := repo.Create(ctx, User{
			ID:       "u-1",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Phone:    "+91 90000 00000",
			Password: "hashed",
			Role:     RoleUser,
		})

		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, RoleUser, u.Role)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "password", "role", "created_at"}).
			AddRow("u-1", "Ravi", "ravi@example.com", "", "hashed", "USER", time.Now())

		mockDB.ExpectQuery(`SELECT id, name, email, phone, password, role, created_at FROM users`).
			WithArgs("ravi@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "ravi@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockDB.ExpectQuery(`SELECT id, name, email, phone, password, role, created_at FROM users`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestRepository_Count(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mockDB.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
