package rate_limiter

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// интерфейс rate limiter для использования во внешних модулях
type RateLimiter interface {
	Wait(ctx context.Context) error
	Stop()
}

// ChannelRateLimiter - rate limiter на основе канала и тикера.
// Тикер кладёт разрешения в канал с заданным интервалом,
// Wait забирает по одному разрешению на запрос.
type ChannelRateLimiter struct {
	limiter  chan struct{}
	ticker   *time.Ticker
	stopCh   chan struct{}
	stopOnce sync.Once
}

// конструктор для rate limiter, rate - минимальный интервал между запросами
func NewChannelRateLimiter(rate time.Duration) (*ChannelRateLimiter, error) {
	if rate <= 0 {
		return nil, errors.New("Rate must be greater than zero")
	}

	rl := &ChannelRateLimiter{
		limiter: make(chan struct{}),
		ticker:  time.NewTicker(rate),
		stopCh:  make(chan struct{}),
	}

	go rl.run()

	return rl, nil
}

// фоновая горутина, выдающая разрешения по тикеру
func (rl *ChannelRateLimiter) run() {
	defer rl.ticker.Stop()
	for {
		select {
		case <-rl.stopCh:
			return
		case <-rl.ticker.C:
			select {
			case rl.limiter <- struct{}{}:
			case <-rl.stopCh:
				return
			}
		}
	}
}

// Wait блокируется до получения разрешения, отмены контекста или остановки
func (rl *ChannelRateLimiter) Wait(ctx context.Context) error {
	select {
	case <-rl.stopCh:
		return errors.New("rate limiter stopped")
	case <-ctx.Done():
		return ctx.Err()
	case <-rl.limiter:
		return nil
	}
}

// Stop останавливает rate limiter, повторный вызов безопасен
func (rl *ChannelRateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// RateLimitMiddleware - gin middleware поверх rate limiter
func RateLimitMiddleware(rl RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rl.Wait(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Слишком много запросов"})
			return
		}
		c.Next()
	}
}
