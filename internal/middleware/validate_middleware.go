package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator"
)

// создаём экземпляр валидатора (чтобы он создавался в памяти только при загрузке модуля)
var validate = validator.New()

// ValidateMiddleware создает middleware для валидации тела запроса.
// Запрос либо проходит дальше с типизированными данными в контексте,
// либо отклоняется с 400 до того, как его увидит хэндлер.
func ValidateMiddleware(model interface{}) gin.HandlerFunc {

	return func(c *gin.Context) {
		// Создаем новый экземпляр структуры для валидации
		request := reflect.New(reflect.TypeOf(model).Elem()).Interface()

		// Парсим БЕЗ встроенной валидации Gin
		if err := c.ShouldBindBodyWith(request, binding.JSON); err != nil {
			// Только ошибки парсинга JSON (не валидации!)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Ошибка в данных"})
			return
		}

		// Валидируем структуру
		if err := validate.Struct(request); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Ошибка в данных"})
			return
		}

		// Сохраняем валидированные данные в контекст для использования в обработчике
		c.Set("validatedData", request)
		c.Next()
	}
}
