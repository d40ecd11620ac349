// описание моделей запросов и ответов сервиса
package dto

import (
	"time"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
)

// структура запроса для регистрации пользователя
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// структура запроса для логина пользователя
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// структура запроса на обновление профиля
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// структура запроса на обновление аватара
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// структура запроса на создание карточки
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// структура пользователя в ответе.
// Хэш пароля в этой структуре отсутствует и не может попасть в ответ.
type UserResponse struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

// структура карточки в ответе
type CardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// обёртка для успешных ответов
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ответ логина для bearer транспорта
type TokenResponse struct {
	Token string `json:"token"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}

func NewUserListResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, 0, len(users))
	for i := range users {
		list = append(list, NewUserResponse(&users[i]))
	}
	return list
}

func NewCardResponse(card *domain.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

func NewCardListResponse(cards []domain.Card) []CardResponse {
	list := make([]CardResponse, 0, len(cards))
	for i := range cards {
		list = append(list, NewCardResponse(&cards[i]))
	}
	return list
}
