package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/apperrors"
)

// WriteError - единственная точка превращения ошибки в HTTP ответ.
// Клиент получает только статус и сообщение из таксономии,
// внутренние детали уходят в лог.
func WriteError(c *gin.Context, err error) {
	appErr := apperrors.From(err)

	if appErr.Kind == apperrors.KindInternal {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.AbortWithStatusJSON(appErr.Kind.HTTPStatus(), gin.H{"message": appErr.Message})
}
