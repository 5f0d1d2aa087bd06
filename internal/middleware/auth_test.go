package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photo-vault-server/internal/config"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/db"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
	"photo-vault-server/internal/service"
	"photo-vault-server/internal/testutils"
	"photo-vault-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func setupMiddlewareTest(t *testing.T) *service.ProfileService {
	t.Helper()
	gin.SetMode(gin.TestMode)

	saved := []testutils.SavedEnv{
		testutils.SetAppEnv("JWT_SECRET", "test_secret"),
	}
	t.Cleanup(func() { testutils.RestoreEnv(saved) })
	config.InitConfig(t.TempDir())

	testutils.SetupDB(t)
	return service.NewProfileService(repository.NewProfileRepository(db.DB))
}

func protectedEngine(profiles *service.ProfileService, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(), PrincipalResolver(profiles)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "id": p.ID, "role": p.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// 测试内容：验证缺失与非法令牌在认证中间件处被拦截。
func TestJWTAuth_RejectsInvalidToken(t *testing.T) {
	profiles := setupMiddlewareTest(t)
	r := protectedEngine(profiles)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("无令牌期望 401，实际为 %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest("garbage"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("非法令牌期望 401，实际为 %d", rec.Code)
	}
}

// 测试内容：验证主体解析从资料表新鲜读取角色，令牌签发后提升的
// 权限立即可见、被撤销的权限立即失效。
func TestPrincipalResolver_FreshRoleRead(t *testing.T) {
	profiles := setupMiddlewareTest(t)
	r := protectedEngine(profiles)

	profile := model.Profile{ID: "u1", Email: "a@example.com", Role: consts.RoleUser}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("创建资料行失败: %v", err)
	}

	token, err := utils.GenerateSessionToken("u1", "a@example.com", time.Hour)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(token))
	var resp struct {
		Role string `json:"role"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Role != consts.RoleUser {
		t.Fatalf("期望 user 角色，实际为 %q", resp.Role)
	}

	// 同一令牌，资料表中的角色变化立即反映到主体上
	if err := db.DB.Model(&model.Profile{}).Where("id = ?", "u1").
		Update("role", consts.RoleAdmin).Error; err != nil {
		t.Fatalf("更新角色失败: %v", err)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(token))
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Role != consts.RoleAdmin {
		t.Fatalf("期望新鲜读取的 admin 角色，实际为 %q", resp.Role)
	}
}

// 测试内容：验证封禁门禁拦截请求并标记 banned 字段，封禁即时生效。
func TestBanGate_BlocksBannedImmediately(t *testing.T) {
	profiles := setupMiddlewareTest(t)
	r := protectedEngine(profiles, BanGate())

	profile := model.Profile{ID: "u1", Email: "a@example.com", Role: consts.RoleUser}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("创建资料行失败: %v", err)
	}
	token, _ := utils.GenerateSessionToken("u1", "a@example.com", time.Hour)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("未封禁期望 200，实际为 %d", rec.Code)
	}

	// 封禁后同一令牌立即被拦截，无需重新登录
	if err := db.DB.Model(&model.Profile{}).Where("id = ?", "u1").
		Update("is_banned", true).Error; err != nil {
		t.Fatalf("设置封禁失败: %v", err)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(token))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("封禁后期望 403，实际为 %d", rec.Code)
	}
	var resp struct {
		Banned bool `json:"banned"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Banned {
		t.Fatalf("期望响应携带 banned=true: %s", rec.Body.String())
	}
}

// 测试内容：验证管理员门禁基于资料表角色而非令牌内容。
func TestAdminCheck(t *testing.T) {
	profiles := setupMiddlewareTest(t)
	r := protectedEngine(profiles, AdminCheck())

	userProfile := model.Profile{ID: "u1", Email: "a@example.com", Role: consts.RoleUser}
	adminProfile := model.Profile{ID: "a1", Email: "root@example.com", Role: consts.RoleAdmin}
	if err := db.DB.Create(&userProfile).Error; err != nil {
		t.Fatalf("创建资料行失败: %v", err)
	}
	if err := db.DB.Create(&adminProfile).Error; err != nil {
		t.Fatalf("创建资料行失败: %v", err)
	}

	userToken, _ := utils.GenerateSessionToken("u1", "a@example.com", time.Hour)
	adminToken, _ := utils.GenerateSessionToken("a1", "root@example.com", time.Hour)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(userToken))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("普通用户期望 403，实际为 %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(adminToken))
	if rec.Code != http.StatusOK {
		t.Fatalf("管理员期望 200，实际为 %d", rec.Code)
	}
}

// 测试内容：验证资料行缺失的身份被当作普通用户，无法通过管理员门禁。
func TestAdminCheck_MissingProfileNeverAdmin(t *testing.T) {
	profiles := setupMiddlewareTest(t)
	r := protectedEngine(profiles, AdminCheck())

	token, _ := utils.GenerateSessionToken("ghost", "ghost@example.com", time.Hour)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, bearerRequest(token))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("缺失资料的主体期望 403，实际为 %d", rec.Code)
	}
}
