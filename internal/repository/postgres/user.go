package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cipherline/cipherline-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// ErrDuplicateUsername reports a violated username uniqueness constraint.
var ErrDuplicateUsername = errors.New("username already taken")

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, email, password_hash, display_name, public_key, created_at, updated_at
			  FROM users WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName, &user.PublicKey,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, username, email, password_hash, display_name, public_key, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName, &user.PublicKey,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]model.User, error) {
	query := `SELECT id, username, email, password_hash, display_name, public_key, created_at, updated_at
			  FROM users WHERE username = ANY($1)`

	rows, err := r.db.Query(ctx, query, usernames)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by usernames: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName, &user.PublicKey,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, email, password_hash, display_name, public_key)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, username, email, password_hash, display_name, public_key, created_at, updated_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.DisplayName, user.PublicKey,
	).Scan(
		&savedUser.ID, &savedUser.Username, &savedUser.Email, &savedUser.PasswordHash,
		&savedUser.DisplayName, &savedUser.PublicKey, &savedUser.CreatedAt, &savedUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, ErrDuplicateUsername
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	query := `UPDATE users
			  SET display_name = COALESCE($2, display_name),
			      public_key = COALESCE($3, public_key),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, username, email, password_hash, display_name, public_key, created_at, updated_at`

	var user model.User
	err := r.db.QueryRow(ctx, query, id, params.DisplayName, params.PublicKey).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName, &user.PublicKey,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
