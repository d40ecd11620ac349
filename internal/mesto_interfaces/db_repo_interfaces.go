package mesto_interfaces

import (
	"context"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
)

// интерфейс слоя базы данных для пользователей.
// Отсутствие записи возвращается как (nil, nil), без ошибки -
// решение о статусе ответа принимает сервисный слой.
type UserRepoInterface interface {
	AddUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}

// интерфейс слоя базы данных для карточек
type CardRepoInterface interface {
	GetCards(ctx context.Context) ([]domain.Card, error)
	AddCard(ctx context.Context, card *domain.Card) (*domain.Card, error)
	FindCardByID(ctx context.Context, id string) (*domain.Card, error)
	DeleteCard(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}
