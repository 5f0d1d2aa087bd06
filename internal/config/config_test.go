package config

import (
	"os"
	"path/filepath"
	"testing"
)

// 测试内容：验证无配置文件时使用默认值启动。
func TestInitConfig_Defaults(t *testing.T) {
	InitConfig(t.TempDir())

	cfg := Get()
	if cfg.Server.Port != "8080" {
		t.Fatalf("期望默认端口 8080，实际为 %q", cfg.Server.Port)
	}
	if cfg.Upload.MaxSizeMB != 10 || cfg.Upload.BatchLimit != 10 {
		t.Fatalf("非预期上传默认值: %+v", cfg.Upload)
	}
	if cfg.Storage.SignedURLSeconds != 3600 {
		t.Fatalf("期望签名地址默认 3600 秒，实际为 %d", cfg.Storage.SignedURLSeconds)
	}
	// 开发模式下自动落到默认密钥
	if cfg.JWT.Secret == "" {
		t.Fatal("期望开发模式补齐默认 JWT Secret")
	}
}

// 测试内容：验证环境变量覆盖配置文件键。
func TestInitConfig_EnvOverride(t *testing.T) {
	prev, had := os.LookupEnv("PHOTO_VAULT_SERVER_PORT")
	_ = os.Setenv("PHOTO_VAULT_SERVER_PORT", "9999")
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("PHOTO_VAULT_SERVER_PORT", prev)
		} else {
			_ = os.Unsetenv("PHOTO_VAULT_SERVER_PORT")
		}
	})

	InitConfig(t.TempDir())
	if Get().Server.Port != "9999" {
		t.Fatalf("期望环境变量覆盖端口为 9999，实际为 %q", Get().Server.Port)
	}
}

// 测试内容：验证配置文件中的值被正确读取。
func TestInitConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: \"7070\"\nupload:\n  max_size_mb: 4\n  batch_limit: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	InitConfig(dir)
	cfg := Get()
	if cfg.Server.Port != "7070" {
		t.Fatalf("期望端口 7070，实际为 %q", cfg.Server.Port)
	}
	if cfg.Upload.MaxSizeMB != 4 || cfg.Upload.BatchLimit != 3 {
		t.Fatalf("非预期上传配置: %+v", cfg.Upload)
	}
}
