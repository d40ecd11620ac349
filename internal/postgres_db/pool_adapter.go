package postgres_db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// интерфейсы доступа к базе, чтобы слой репозитория не зависел от pgxpool напрямую
type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (int64, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) Row
	Query(ctx context.Context, sql string, args ...interface{}) (Rows, error)
	Close() error
}

type Row interface {
	Scan(dest ...interface{}) error
}

type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close()
	Err() error
}

// Проверки реализации интерфейсов
var _ Pool = (*PoolAdapter)(nil)
var _ Rows = (*RowsAdapter)(nil)

// PoolAdapter адаптирует *pgxpool.Pool к интерфейсу Pool
type PoolAdapter struct {
	pool *pgxpool.Pool
}

func NewPoolAdapter(pool *pgxpool.Pool) *PoolAdapter {
	return &PoolAdapter{pool: pool}
}

func (a *PoolAdapter) Close() error {
	a.pool.Close()
	return nil
}

func (a *PoolAdapter) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	tag, err := a.pool.Exec(ctx, sql, args...)
	return tag.RowsAffected(), err
}

func (a *PoolAdapter) QueryRow(ctx context.Context, sql string, args ...interface{}) Row {
	return a.pool.QueryRow(ctx, sql, args...)
}

func (a *PoolAdapter) Query(ctx context.Context, sql string, args ...interface{}) (Rows, error) {
	rows, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &RowsAdapter{rows: rows}, nil
}

// RowsAdapter адаптирует pgx.Rows к интерфейсу Rows
type RowsAdapter struct {
	rows pgx.Rows
}

func (r *RowsAdapter) Next() bool {
	return r.rows.Next()
}

func (r *RowsAdapter) Scan(dest ...interface{}) error {
	return r.rows.Scan(dest...)
}

func (r *RowsAdapter) Close() {
	r.rows.Close()
}

func (r *RowsAdapter) Err() error {
	return r.rows.Err()
}
