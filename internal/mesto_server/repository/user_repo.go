// репозиторий пользователей на базе адаптера к pgxpool
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_interfaces"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/postgres_db"
)

type UserDBRepository struct {
	pool postgres_db.Pool
}

// конструктор для слоя базы данных пользователей
func NewUserRepository(pool postgres_db.Pool) mesto_interfaces.UserRepoInterface {
	return &UserDBRepository{pool: pool}
}

func (r *UserDBRepository) AddUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO users (id, email, password_hash, name, about, avatar)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (email) DO NOTHING
        RETURNING id, email, password_hash, name, about, avatar, created_at
    `

	var created domain.User
	err := r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.About, user.Avatar,
	).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.Name,
		&created.About,
		&created.Avatar,
		&created.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		// вставка не произошла - email уже занят
		return nil, domain.ErrUserAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (r *UserDBRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, email, password_hash, name, about, avatar, created_at
        FROM users
        WHERE email = $1
        LIMIT 1
    `

	var user domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // пользователь не найден, но без ошибки
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return &user, nil
}

func (r *UserDBRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, email, password_hash, name, about, avatar, created_at
        FROM users
        WHERE id = $1
        LIMIT 1
    `

	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return &user, nil
}

func (r *UserDBRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, email, password_hash, name, about, avatar, created_at
        FROM users
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.Name,
			&user.About,
			&user.Avatar,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

func (r *UserDBRepository) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        UPDATE users
        SET name = $2, about = $3
        WHERE id = $1
        RETURNING id, email, password_hash, name, about, avatar, created_at
    `

	return r.scanUpdatedUser(r.pool.QueryRow(ctx, query, id, name, about))
}

func (r *UserDBRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        UPDATE users
        SET avatar = $2
        WHERE id = $1
        RETURNING id, email, password_hash, name, about, avatar, created_at
    `

	return r.scanUpdatedUser(r.pool.QueryRow(ctx, query, id, avatar))
}

func (r *UserDBRepository) scanUpdatedUser(row postgres_db.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}
