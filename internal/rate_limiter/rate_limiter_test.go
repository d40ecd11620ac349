package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const rate = 50 * time.Millisecond

// проверяем создание rate limiter
func TestNewChannelRateLimiter(t *testing.T) {
	t.Run("creates with valid rate", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(rate)
		assert.NoError(t, err)
		defer rl.Stop()

		assert.NotNil(t, rl)
		assert.NotNil(t, rl.limiter)

		// проверяем соответствие интерфейсу
		var _ RateLimiter = rl
	})

	// проверяем, если передали в качестве rate - ноль!
	t.Run("zero rate", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(0)
		assert.Error(t, err)
		assert.EqualError(t, err, "Rate must be greater than zero")
		assert.Nil(t, rl)
	})

	// проверяем, если передали в качестве rate - отрицательное значение!
	t.Run("negative rate", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(-10 * time.Millisecond)
		assert.Error(t, err)
		assert.EqualError(t, err, "Rate must be greater than zero")
		assert.Nil(t, rl)
	})
}

// проверяем корректность интервалов времени у метода Wait(ctx)
func TestChannelRateLimiter_Wait(t *testing.T) {
	// несколько запросов подряд выполняются не быстрее заданного rate
	t.Run("respects rate limit", func(t *testing.T) {
		rate := 100 * time.Millisecond
		rl, err := NewChannelRateLimiter(rate)
		assert.NoError(t, err)
		defer rl.Stop()

		ctx := context.Background()

		start := time.Now()
		assert.NoError(t, rl.Wait(ctx))
		assert.NoError(t, rl.Wait(ctx))
		elapsed := time.Since(start)

		assert.GreaterOrEqual(t, elapsed, 2*rate)
		assert.Less(t, elapsed, 2*rate+20*time.Millisecond)
	})

	// отмена контекста прерывает ожидание
	t.Run("cancelled context", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(time.Hour)
		assert.NoError(t, err)
		defer rl.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err = rl.Wait(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

// проверяем механизм остановки rate limiter
func TestChannelRateLimiter_Stop(t *testing.T) {
	// штатная остановка, после неё Wait возвращает ошибку
	t.Run("wait after stop returns error", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(rate)
		assert.NoError(t, err)
		rl.Stop()

		err = rl.Wait(context.Background())
		assert.Error(t, err)
		assert.Equal(t, "rate limiter stopped", err.Error())
	})

	// повторный останов не паникует
	t.Run("idempotent stop", func(t *testing.T) {
		rl, err := NewChannelRateLimiter(rate)
		assert.NoError(t, err)

		rl.Stop()
		rl.Stop()
		rl.Stop()

		err = rl.Wait(context.Background())
		assert.Error(t, err)
	})
}
