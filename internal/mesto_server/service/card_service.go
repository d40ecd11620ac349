// описание сервисного слоя для карточек
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_interfaces"
)

// описание интерфейса сервисного слоя карточек
type CardServiceInterface interface {
	GetCards(ctx context.Context) ([]domain.Card, error)
	CreateCard(ctx context.Context, ownerID, name, link string) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID, subjectID string) (*domain.Card, error)
	Like(ctx context.Context, cardID, subjectID string) (*domain.Card, error)
	Unlike(ctx context.Context, cardID, subjectID string) (*domain.Card, error)
}

// описание структуры сервисного слоя карточек
type CardService struct {
	repo mesto_interfaces.CardRepoInterface
}

// конструктор для сервисного слоя карточек
func NewCardService(repo mesto_interfaces.CardRepoInterface) *CardService {
	return &CardService{
		repo: repo,
	}
}

// проверка владения ресурсом: чистое сравнение, без I/O.
// Применяется только к операциям, доступным исключительно владельцу.
func authorizeOwner(ownerID, subjectID string) error {
	if ownerID != subjectID {
		return apperrors.Forbidden("Нельзя удалить чужую карточку")
	}
	return nil
}

// метод получения всех карточек
func (s *CardService) GetCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.repo.GetCards(ctx)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	return cards, nil
}

// метод создания карточки, владелец - авторизованный субъект запроса
func (s *CardService) CreateCard(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	card := &domain.Card{
		ID:      uuid.New().String(),
		Name:    name,
		Link:    link,
		OwnerID: ownerID,
	}

	created, err := s.repo.AddCard(ctx, card)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}

	return created, nil
}

// Метод удаления карточки: операция только для владельца.
// Порядок проверок фиксирован: сначала существование (404), потом владение (403),
// чтобы по ответу нельзя было перепутать отсутствующий и чужой ресурс.
func (s *CardService) DeleteCard(ctx context.Context, cardID, subjectID string) (*domain.Card, error) {
	card, err := s.repo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if card == nil {
		return nil, apperrors.NotFound("Карточка не найдена")
	}

	if err := authorizeOwner(card.OwnerID, subjectID); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteCard(ctx, cardID); err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}

	return card, nil
}

// Метод лайка карточки: доступен любому авторизованному субъекту,
// владение не проверяется, повторный лайк идемпотентен
func (s *CardService) Like(ctx context.Context, cardID, subjectID string) (*domain.Card, error) {
	card, err := s.repo.AddLike(ctx, cardID, subjectID)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if card == nil {
		return nil, apperrors.NotFound("Карточка не найдена")
	}
	return card, nil
}

// метод снятия лайка, так же доступен любому авторизованному субъекту
func (s *CardService) Unlike(ctx context.Context, cardID, subjectID string) (*domain.Card, error) {
	card, err := s.repo.RemoveLike(ctx, cardID, subjectID)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if card == nil {
		return nil, apperrors.NotFound("Карточка не найдена")
	}
	return card, nil
}
