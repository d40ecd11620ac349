// описание хэндлеров для пользователей и аутентификации
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/cookie"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/dto"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/middleware"
)

// описание интерфейса слоя хэндлеров пользователей
type UserHandlerInterface interface {
	SignupHandler(c *gin.Context)
	SigninHandler(c *gin.Context)
	SignoutHandler(c *gin.Context)
	GetUsersHandler(c *gin.Context)
	GetUserHandler(c *gin.Context)
	GetCurrentUserHandler(c *gin.Context)
	UpdateProfileHandler(c *gin.Context)
	UpdateAvatarHandler(c *gin.Context)
}

// структура хэндлера пользователей
type UserHandler struct {
	service    service.UserServiceInterface
	cookies    cookie.CookieManagerInterface
	authConf   *config.AuthConfig
	cookieConf *config.CookieManagerConfig
}

// конструктор для слоя хэндлеров пользователей
func NewUserHandler(
	service service.UserServiceInterface,
	cookies cookie.CookieManagerInterface,
	authConf *config.AuthConfig,
	cookieConf *config.CookieManagerConfig,
) *UserHandler {
	return &UserHandler{
		service:    service,
		cookies:    cookies,
		authConf:   authConf,
		cookieConf: cookieConf,
	}
}

// метод обработки POST /signup: регистрация нового пользователя
func (h *UserHandler) SignupHandler(c *gin.Context) {
	validatedData, exists := c.Get("validatedData")
	if !exists {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return
	}

	req, ok := validatedData.(*dto.SignupRequest)
	if !ok {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", nil))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.About, req.Avatar)
	if err != nil {
		WriteError(c, err)
		return
	}

	// в ответе профиль без хэша пароля
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.NewUserResponse(user)})
}

// Метод обработки POST /signin: проверка учётных данных и выдача токена.
// Токен уходит через сконфигурированный транспорт: кука jwt или тело ответа.
func (h *UserHandler) SigninHandler(c *gin.Context) {
	validatedData, exists := c.Get("validatedData")
	if !exists {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return
	}

	req, ok := validatedData.(*dto.SigninRequest)
	if !ok {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", nil))
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(c, err)
		return
	}

	if h.authConf.TokenTransport == config.TokenTransportBearer {
		// bearer транспорт: токен в теле ответа, куки не трогаем
		c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
		return
	}

	// кука с токеном: HttpOnly, живёт столько же, сколько сам токен
	err = h.cookies.SetCookie(c, cookie.CookieOptions{
		Name:   h.authConf.CookieName,
		Value:  token,
		MaxAge: int(h.cookieConf.TokenMaxAge.Std().Seconds()),
	})
	if err != nil {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", err))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserResponse(user)})
}

// Метод обработки GET /signout: очистка куки с токеном.
// Токены stateless, на сервере ничего не инвалидируется.
func (h *UserHandler) SignoutHandler(c *gin.Context) {
	if h.authConf.TokenTransport == config.TokenTransportCookie {
		h.cookies.DeleteCookie(c, h.authConf.CookieName, "")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Выход выполнен"})
}

// метод обработки GET /users: список всех пользователей
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.service.GetUsers(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserListResponse(users)})
}

// метод обработки GET /users/:userId: пользователь по ID
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserResponse(user)})
}

// метод обработки GET /users/me: профиль текущего пользователя.
// ID берётся только из контекста, положенного гейтом аутентификации.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), subjectID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserResponse(user)})
}

// метод обработки PATCH /users/me: обновление имени и информации
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	validatedData, exists := c.Get("validatedData")
	if !exists {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return
	}

	req, ok := validatedData.(*dto.UpdateProfileRequest)
	if !ok {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", nil))
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), subjectID, req.Name, req.About)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserResponse(user)})
}

// метод обработки PATCH /users/me/avatar: обновление аватара
func (h *UserHandler) UpdateAvatarHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	validatedData, exists := c.Get("validatedData")
	if !exists {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return
	}

	req, ok := validatedData.(*dto.UpdateAvatarRequest)
	if !ok {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", nil))
		return
	}

	user, err := h.service.UpdateAvatar(c.Request.Context(), subjectID, req.Avatar)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewUserResponse(user)})
}
