package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-vault-server/internal/config"
	"photo-vault-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证内存令牌桶在突发额度耗尽后返回 429。
func TestAuthRateLimitMiddleware_InMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	saved := []testutils.SavedEnv{
		testutils.SetAppEnv("RATELIMIT_ENABLED", "true"),
		testutils.SetAppEnv("RATELIMIT_AUTH_RPS", "0.001"),
		testutils.SetAppEnv("RATELIMIT_AUTH_BURST", "2"),
		testutils.SetAppEnv("REDIS_ENABLED", "false"),
	}
	t.Cleanup(func() { testutils.RestoreEnv(saved) })
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("突发额度内期望 200，实际为 %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("超出额度期望 429，实际为 %v", codes)
	}
}

// 测试内容：验证 auth_rps 配成 0 时按默认 1.0 兜底，
// 突发额度仍然生效而不是除零得出无穷大窗口。
func TestAuthRateLimitMiddleware_ZeroRPSClamped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	saved := []testutils.SavedEnv{
		testutils.SetAppEnv("RATELIMIT_ENABLED", "true"),
		testutils.SetAppEnv("RATELIMIT_AUTH_RPS", "0"),
		testutils.SetAppEnv("RATELIMIT_AUTH_BURST", "2"),
		testutils.SetAppEnv("REDIS_ENABLED", "false"),
	}
	t.Cleanup(func() { testutils.RestoreEnv(saved) })
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("突发额度内期望 200，实际为 %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("超出额度期望 429，实际为 %v", codes)
	}
}

// 测试内容：验证限流关闭时请求直接放行。
func TestAuthRateLimitMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	saved := []testutils.SavedEnv{
		testutils.SetAppEnv("RATELIMIT_ENABLED", "false"),
	}
	t.Cleanup(func() { testutils.RestoreEnv(saved) })
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("限流关闭期望 200，实际为 %d", rec.Code)
		}
	}
}
