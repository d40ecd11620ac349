package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
)

// fakeCardRepo - репозиторий карточек в памяти для тестов сервисного слоя
type fakeCardRepo struct {
	cards   map[string]*domain.Card
	deleted []string
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*domain.Card)}
}

func (r *fakeCardRepo) GetCards(_ context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	for _, card := range r.cards {
		cards = append(cards, *card)
	}
	return cards, nil
}

func (r *fakeCardRepo) AddCard(_ context.Context, card *domain.Card) (*domain.Card, error) {
	stored := *card
	r.cards[card.ID] = &stored
	return &stored, nil
}

func (r *fakeCardRepo) FindCardByID(_ context.Context, id string) (*domain.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	return card, nil
}

func (r *fakeCardRepo) DeleteCard(_ context.Context, id string) error {
	delete(r.cards, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCardRepo) AddLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	card, ok := r.cards[cardID]
	if !ok {
		return nil, nil
	}
	for _, like := range card.Likes {
		if like == userID {
			return card, nil
		}
	}
	card.Likes = append(card.Likes, userID)
	return card, nil
}

func (r *fakeCardRepo) RemoveLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	card, ok := r.cards[cardID]
	if !ok {
		return nil, nil
	}
	likes := card.Likes[:0]
	for _, like := range card.Likes {
		if like != userID {
			likes = append(likes, like)
		}
	}
	card.Likes = likes
	return card, nil
}

// владелец удаляет свою карточку
func TestCardService_DeleteCard_Owner(t *testing.T) {
	repo := newFakeCardRepo()
	svc := NewCardService(repo)

	created, err := svc.CreateCard(context.Background(), "owner-1", "Москва", "https://x.test/m.png")
	require.NoError(t, err)

	deleted, err := svc.DeleteCard(context.Background(), created.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Contains(t, repo.deleted, created.ID)
}

// чужую карточку удалить нельзя: Forbidden, карточка остаётся в базе
func TestCardService_DeleteCard_NotOwner(t *testing.T) {
	repo := newFakeCardRepo()
	svc := NewCardService(repo)

	created, err := svc.CreateCard(context.Background(), "owner-1", "Москва", "https://x.test/m.png")
	require.NoError(t, err)

	_, err = svc.DeleteCard(context.Background(), created.ID, "intruder")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, kindOf(t, err))
	assert.Empty(t, repo.deleted)
}

// удаление несуществующей карточки - NotFound даже для авторизованного субъекта,
// проверка существования идёт строго до проверки владения
func TestCardService_DeleteCard_NotFound(t *testing.T) {
	svc := NewCardService(newFakeCardRepo())

	_, err := svc.DeleteCard(context.Background(), "no-such-card", "owner-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}

// лайк доступен любому авторизованному субъекту, не только владельцу,
// повторный лайк идемпотентен
func TestCardService_Like_AnySubject(t *testing.T) {
	repo := newFakeCardRepo()
	svc := NewCardService(repo)

	created, err := svc.CreateCard(context.Background(), "owner-1", "Москва", "https://x.test/m.png")
	require.NoError(t, err)

	card, err := svc.Like(context.Background(), created.ID, "someone-else")
	require.NoError(t, err)
	assert.Contains(t, card.Likes, "someone-else")

	card, err = svc.Like(context.Background(), created.ID, "someone-else")
	require.NoError(t, err)
	assert.Len(t, card.Likes, 1)

	card, err = svc.Unlike(context.Background(), created.ID, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, card.Likes)
}

// лайк несуществующей карточки - NotFound
func TestCardService_Like_NotFound(t *testing.T) {
	svc := NewCardService(newFakeCardRepo())

	_, err := svc.Like(context.Background(), "no-such-card", "u1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}

// чистая проверка владения
func TestAuthorizeOwner(t *testing.T) {
	assert.NoError(t, authorizeOwner("u1", "u1"))

	err := authorizeOwner("u1", "u2")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, kindOf(t, err))
}
