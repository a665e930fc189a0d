package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockLimiter(window time.Duration, max int) (*RateLimiter, *time.Time) {
	rl := NewRateLimiter(window, max)
	current := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return current }
	return rl, &current
}

func TestRateLimiterCeilingWithinWindow(t *testing.T) {
	rl, _ := fixedClockLimiter(60*time.Second, 3)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl, clock := fixedClockLimiter(60*time.Second, 3)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("1.2.3.4"))
	}
	require.False(t, rl.Allow("1.2.3.4"))

	*clock = clock.Add(61 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiterRejectionDoesNotConsumeSlot(t *testing.T) {
	rl, clock := fixedClockLimiter(60*time.Second, 3)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("1.2.3.4"))
	}
	// Hammering while blocked must not extend the block past the window.
	for i := 0; i < 10; i++ {
		require.False(t, rl.Allow("1.2.3.4"))
	}

	*clock = clock.Add(61 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiterClientsAreIndependent(t *testing.T) {
	rl, _ := fixedClockLimiter(60*time.Second, 3)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("1.2.3.4"))
	}
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterTrimsTimestampLog(t *testing.T) {
	rl, clock := fixedClockLimiter(time.Hour, 100)

	for i := 0; i < 25; i++ {
		require.True(t, rl.Allow("1.2.3.4"))
		*clock = clock.Add(time.Second)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.LessOrEqual(t, len(rl.clients["1.2.3.4"]), keepLastN)
}

func TestClientKeyHeaderFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/api/contact", nil)
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	assert.Equal(t, "9.9.9.9", ClientKey(makeCtx(map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.1"})))
	assert.Equal(t, "8.8.8.8", ClientKey(makeCtx(map[string]string{"X-Real-IP": "8.8.8.8"})))
	assert.Equal(t, "unknown", ClientKey(makeCtx(nil)))
}
