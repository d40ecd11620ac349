// описание сервисного слоя для пользователей
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_interfaces"
)

// дефолтные значения профиля как в исходной схеме mestodb
const (
	defaultName   = "Жак-Ив Кусто"
	defaultAbout  = "Исследователь"
	defaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// Сообщение для неверных учётных данных одно на все случаи:
// по ответу нельзя понять, существует ли email в базе.
const wrongCredentialsMessage = "Ошибка аутентификации"

// описание интерфейса сервисного слоя пользователей
type UserServiceInterface interface {
	Register(ctx context.Context, email, password, name, about, avatar string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}

// описание структуры сервисного слоя пользователей
type UserService struct {
	repo mesto_interfaces.UserRepoInterface
	jwt  jwt_service.JWTManager
}

// конструктор для сервисного слоя пользователей
func NewUserService(repo mesto_interfaces.UserRepoInterface, jwt jwt_service.JWTManager) *UserService {
	return &UserService{
		repo: repo,
		jwt:  jwt,
	}
}

// Метод регистрации пользователя.
// Пароль хэшируется bcrypt и в открытом виде никуда не сохраняется и не логируется.
func (s *UserService) Register(ctx context.Context, email, password, name, about, avatar string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}

	// Хеширование пароля (bcrypt cost 10)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", fmt.Errorf("failed to hash password: %w", err))
	}

	// незаполненные поля профиля получают дефолтные значения
	if name == "" {
		name = defaultName
	}
	if about == "" {
		about = defaultAbout
	}
	if avatar == "" {
		avatar = defaultAvatar
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		About:        about,
		Avatar:       avatar,
	}

	created, err := s.repo.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, apperrors.Conflict("Почта занята")
		}
		if errors.Is(err, domain.ErrValidation) {
			return nil, apperrors.BadRequest("Ошибка в данных")
		}
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}

	return created, nil
}

// Метод логина пользователя: проверка учётных данных и выпуск токена.
// Отсутствующий email и неверный пароль дают неразличимый ответ.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", apperrors.Internal("На сервере произошла ошибка", err)
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.Internal("На сервере произошла ошибка", err)
	}
	if user == nil {
		return nil, "", apperrors.Unauthorized(wrongCredentialsMessage)
	}

	// несовпадение хэша - не ошибка инфраструктуры, а неверные учётные данные
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized(wrongCredentialsMessage)
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperrors.Internal("На сервере произошла ошибка", err)
	}

	return user, token, nil
}

// метод получения всех пользователей
func (s *UserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	return users, nil
}

// метод получения пользователя по ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("Пользователь не найден")
	}
	return user, nil
}

// метод обновления имени и информации о пользователе
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, name, about)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("Пользователь не найден")
	}
	return user, nil
}

// метод обновления аватара пользователя
func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	user, err := s.repo.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, apperrors.Internal("На сервере произошла ошибка", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("Пользователь не найден")
	}
	return user, nil
}
