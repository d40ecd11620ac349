// репозиторий карточек на базе адаптера к pgxpool
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

type CardDBRepository struct {
	pool postgres_db.Pool
}

// конструктор для слоя базы данных карточек
func NewCardRepository(pool postgres_db.Pool) mesto_interfaces.CardRepoInterface {
	return &CardDBRepository{pool: pool}
}

const cardColumns = `id, name, link, owner_id, likes, created_at`

func (r *CardDBRepository) GetCards(ctx context.Context) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `SELECT ` + cardColumns + ` FROM cards ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(
			&card.ID,
			&card.Name,
			&card.Link,
			&card.OwnerID,
			&card.Likes,
			&card.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	return cards, nil
}

func (r *CardDBRepository) AddCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO cards (id, name, link, owner_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + cardColumns

	return r.scanCard(r.pool.QueryRow(ctx, query, card.ID, card.Name, card.Link, card.OwnerID))
}

func (r *CardDBRepository) FindCardByID(ctx context.Context, id string) (*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 LIMIT 1`

	card, err := r.scanCard(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find card by id: %w", err)
	}
	return card, nil
}

func (r *CardDBRepository) DeleteCard(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	const query = `DELETE FROM cards WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}

func (r *CardDBRepository) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// добавление в множество лайков идемпотентно: повторный лайк не меняет массив
	const query = `
        UPDATE cards
        SET likes = CASE WHEN $2 = ANY(likes) THEN likes ELSE array_append(likes, $2) END
        WHERE id = $1
        RETURNING ` + cardColumns

	card, err := r.scanCard(r.pool.QueryRow(ctx, query, cardID, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to add like: %w", err)
	}
	return card, nil
}

func (r *CardDBRepository) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        UPDATE cards
        SET likes = array_remove(likes, $2)
        WHERE id = $1
        RETURNING ` + cardColumns

	card, err := r.scanCard(r.pool.QueryRow(ctx, query, cardID, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to remove like: %w", err)
	}
	return card, nil
}

// scanCard читает карточку из строки результата, (nil, nil) если строки нет
func (r *CardDBRepository) scanCard(row postgres_db.Row) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.OwnerID,
		&card.Likes,
		&card.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &card, nil
}
