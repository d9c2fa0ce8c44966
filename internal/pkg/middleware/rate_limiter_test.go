package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr, client := setupRedis(t)
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleClient}

	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit:bookings",
		Limit:       2,
		Period:      time.Minute,
	})
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	e := echo.New()
	do := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/bookings/bookride", nil), rec)
		c.SetPath("/bookings/bookride")
		SetPrincipal(c, principal)
		require.NoError(t, h(c))
		return rec
	}

	assert.Equal(t, http.StatusCreated, do().Code)
	second := do()
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))

	key := "ratelimit:bookings:/bookings/bookride:" + principal.UserID.String()
	assert.True(t, mr.TTL(key) > 0)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusCreated, do().Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	h := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Key: "rl", Limit: 1, Period: time.Minute})(
		func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_Disabled(t *testing.T) {
	h := RateLimiterMiddleware(RateLimiterConfig{Limit: 0})(
		func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_WindowAlwaysExpires(t *testing.T) {
	// Arrange
	mr, client := setupRedis(t)
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleClient}
	h := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Key: "rl", Limit: 1, Period: time.Minute})(
		func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	e := echo.New()
	do := func() int {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/bookings/bookride", nil), rec)
		c.SetPath("/bookings/bookride")
		SetPrincipal(c, principal)
		require.NoError(t, h(c))
		return rec.Code
	}
	key := "rl:/bookings/bookride:" + principal.UserID.String()

	// Act
	first := do()
	ttlAfterFirst := mr.TTL(key)
	mr.FastForward(20 * time.Second)
	second := do()

	// Assert
	assert.Equal(t, http.StatusCreated, first)
	assert.Equal(t, time.Minute, ttlAfterFirst)
	assert.Equal(t, http.StatusTooManyRequests, second)
	assert.Equal(t, 40*time.Second, mr.TTL(key), "later requests must not extend the window")
	count, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}
