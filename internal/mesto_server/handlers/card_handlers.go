// описание хэндлеров для карточек
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/dto"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/middleware"
)

// описание интерфейса слоя хэндлеров карточек
type CardHandlerInterface interface {
	GetCardsHandler(c *gin.Context)
	CreateCardHandler(c *gin.Context)
	DeleteCardHandler(c *gin.Context)
	LikeCardHandler(c *gin.Context)
	DislikeCardHandler(c *gin.Context)
}

// структура хэндлера карточек
type CardHandler struct {
	service service.CardServiceInterface
}

// конструктор для слоя хэндлеров карточек
func NewCardHandler(service service.CardServiceInterface) *CardHandler {
	return &CardHandler{
		service: service,
	}
}

// метод обработки GET /cards: список всех карточек
func (h *CardHandler) GetCardsHandler(c *gin.Context) {
	cards, err := h.service.GetCards(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewCardListResponse(cards)})
}

// метод обработки POST /cards: создание карточки от имени субъекта запроса
func (h *CardHandler) CreateCardHandler(c *gin.Context) {
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

	req, ok := validatedData.(*dto.CreateCardRequest)
	if !ok {
		WriteError(c, apperrors.Internal("На сервере произошла ошибка", nil))
		return
	}

	card, err := h.service.CreateCard(c.Request.Context(), subjectID, req.Name, req.Link)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.NewCardResponse(card)})
}

// метод обработки DELETE /cards/:cardId: удаление, доступно только владельцу
func (h *CardHandler) DeleteCardHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	cardID, ok := cardIDParam(c)
	if !ok {
		return
	}

	card, err := h.service.DeleteCard(c.Request.Context(), cardID, subjectID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewCardResponse(card)})
}

// метод обработки PUT /cards/:cardId/likes: лайк от любого авторизованного субъекта
func (h *CardHandler) LikeCardHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	cardID, ok := cardIDParam(c)
	if !ok {
		return
	}

	card, err := h.service.Like(c.Request.Context(), cardID, subjectID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewCardResponse(card)})
}

// метод обработки DELETE /cards/:cardId/likes: снятие лайка
func (h *CardHandler) DislikeCardHandler(c *gin.Context) {
	subjectID, ok := middleware.CurrentUserID(c)
	if !ok {
		WriteError(c, apperrors.Unauthorized("Необходима авторизация"))
		return
	}

	cardID, ok := cardIDParam(c)
	if !ok {
		return
	}

	card, err := h.service.Unlike(c.Request.Context(), cardID, subjectID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.NewCardResponse(card)})
}

// cardIDParam достаёт и проверяет формат ID карточки из пути запроса
func cardIDParam(c *gin.Context) (string, bool) {
	cardID := c.Param("cardId")
	if _, err := uuid.Parse(cardID); err != nil {
		WriteError(c, apperrors.BadRequest("Ошибка в данных"))
		return "", false
	}
	return cardID, true
}
