package testutils

import "os"

// EnvPrefix 与 config 包的 viper 前缀保持一致。
const EnvPrefix = "PHOTO_VAULT_"

// SavedEnv captures the previous state of an environment variable.
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv sets an environment variable and returns its previous state.
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// SetAppEnv 设置带 PHOTO_VAULT_ 前缀的配置项，如 SetAppEnv("JWT_SECRET", ...)。
func SetAppEnv(key, value string) SavedEnv {
	return SetEnv(EnvPrefix+key, value)
}

// BaselineEnv 测试通用的基线环境：固定 JWT 密钥，关闭限流与 Redis，
// 让 httptest 流程不受突发额度和外部依赖影响。
func BaselineEnv() []SavedEnv {
	return []SavedEnv{
		SetAppEnv("JWT_SECRET", "test_secret"),
		SetAppEnv("RATELIMIT_ENABLED", "false"),
		SetAppEnv("REDIS_ENABLED", "false"),
	}
}

// RestoreEnv restores environment variables to a previously saved state.
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}
