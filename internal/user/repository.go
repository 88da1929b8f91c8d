package user

import (
	"context"
	"database/sql"

	"agriconnect-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) (User, error) {
	log := logger.FromCtx(ctx)

	var created User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, name, email, phone, password, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, email, phone, password, role, created_at`,
		u.ID, u.Name, u.Email, u.Phone, u.Password, u.Role,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Password, &created.Role, &created.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
	}

	return created, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, password, role, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Password, &u.Role, &u.CreatedAt)

	return u, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
