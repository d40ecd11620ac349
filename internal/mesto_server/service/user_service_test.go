package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/domain"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
)

// fakeUserRepo - репозиторий пользователей в памяти для тестов сервисного слоя
type fakeUserRepo struct {
	users    map[string]*domain.User // по email
	failWith error                   // если задано, все методы возвращают эту ошибку
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) AddUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserAlreadyExists
	}
	stored := *user
	stored.CreatedAt = time.Now()
	r.users[user.Email] = &stored
	return &stored, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUsers(_ context.Context) ([]domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var users []domain.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id, name, about string) (*domain.User, error) {
	user, err := r.FindUserByID(context.Background(), id)
	if err != nil || user == nil {
		return nil, err
	}
	user.Name = name
	user.About = about
	return user, nil
}

func (r *fakeUserRepo) UpdateAvatar(_ context.Context, id, avatar string) (*domain.User, error) {
	user, err := r.FindUserByID(context.Background(), id)
	if err != nil || user == nil {
		return nil, err
	}
	user.Avatar = avatar
	return user, nil
}

func newTestJWTManager() jwt_service.JWTManager {
	return jwt_service.NewJWTService(&jwt_service.JWTConfig{
		SecretKey: strings.Repeat("s", 32),
		TokenExp:  config.Duration(time.Hour),
		Issuer:    "mesto-api-test",
	})
}

func kindOf(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperrors.AppError, got %v", err)
	return appErr.Kind
}

// при регистрации пароль хэшируется: в базе лежит не открытый пароль,
// а хэш, который проходит bcrypt-проверку
func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newTestJWTManager())

	user, err := svc.Register(context.Background(), "a@x.com", "p1", "Alice", "dev", "")
	require.NoError(t, err)

	stored := repo.users["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "p1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p1")))

	// незаполненный аватар получает дефолт
	assert.Equal(t, defaultAvatar, user.Avatar)
	assert.Equal(t, "Alice", user.Name)
}

// повторная регистрация с тем же email даёт Conflict,
// даже если пароль другой
func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newTestJWTManager())

	_, err := svc.Register(context.Background(), "a@x.com", "p1", "", "", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "another", "", "", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, kindOf(t, err))
}

// сбой базы при регистрации превращается в Internal, а не уходит как есть
func TestUserService_Register_RepoFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewUserService(repo, newTestJWTManager())

	_, err := svc.Register(context.Background(), "a@x.com", "p1", "", "", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, kindOf(t, err))
}

// неверный пароль и несуществующий email неразличимы:
// один и тот же тип ошибки и одно и то же сообщение
func TestUserService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newTestJWTManager())

	_, err := svc.Register(context.Background(), "a@x.com", "p1", "", "", "")
	require.NoError(t, err)

	_, _, wrongPassErr := svc.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, wrongPassErr)

	_, _, noUserErr := svc.Login(context.Background(), "ghost@x.com", "p1")
	require.Error(t, noUserErr)

	assert.Equal(t, apperrors.KindUnauthorized, kindOf(t, wrongPassErr))
	assert.Equal(t, apperrors.KindUnauthorized, kindOf(t, noUserErr))
	assert.Equal(t, apperrors.From(wrongPassErr).Message, apperrors.From(noUserErr).Message)
}

// успешный логин выдаёт токен, который парсится обратно в ID пользователя
func TestUserService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo()
	jwtManager := newTestJWTManager()
	svc := NewUserService(repo, jwtManager)

	created, err := svc.Register(context.Background(), "a@x.com", "p1", "", "", "")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	parsedID, err := jwtManager.ParseUserID(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, parsedID)
}

// запрос несуществующего пользователя по ID даёт NotFound
func TestUserService_GetUserByID_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newTestJWTManager())

	_, err := svc.GetUserByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}
