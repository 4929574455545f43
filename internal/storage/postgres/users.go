package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(ctx context.Context, username, email, passwordHash string, role models.Role) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query, username, email, passwordHash, role).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
