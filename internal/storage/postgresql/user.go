package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ model.UsersRepository = (*UsersRepo)(nil)

type UsersRepo struct {
	baseRepo
}

// Create inserts a wallet owner and fills in the generated id. Two
// concurrent registrations of the same login race past the service-level
// existence check; the UNIQUE constraint on users.login settles the race
// and the loser gets model.ErrUserExists.
func (r *UsersRepo) Create(
	ctx context.Context,
	user *model.User,
) (*model.User, error) {
	q := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int32
	err := r.db.QueryRow(ctx, q, user.Login, user.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, model.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = int(id)

	return user, nil
}

func (r *UsersRepo) GetByLogin(
	ctx context.Context,
	login string,
) (*model.User, error) {
	q := `
		SELECT id, login, password_hash
		FROM users
		WHERE login = $1
	`

	var u model.User
	err := r.db.QueryRow(ctx, q, login).
		Scan(&u.ID, &u.Login, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return &u, nil
}
