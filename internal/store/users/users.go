package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/store"
)

type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
}

type UsersRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewUsersRepository(db *store.DB, log *zap.Logger) *UsersRepository {
	return &UsersRepository{db: db, log: log}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       email_address, COALESCE(avatar, ''), password_hash, role
		FROM users
		WHERE email_address = $1`

	u := &User{}
	err := r.db.Pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.Avatar, &u.PasswordHash, &u.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

// ListByIDs returns every user whose id is in the given set, in one query.
func (r *UsersRepository) ListByIDs(ctx context.Context, ids []string) ([]*User, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       COALESCE(email_address, ''), COALESCE(avatar, ''), COALESCE(password_hash, ''), COALESCE(role, '')
		FROM users
		WHERE id = ANY($1)`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		u := &User{}
		err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.Avatar, &u.PasswordHash, &u.Role)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
