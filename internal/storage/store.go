package storage

import (
	"context"
	"io"
	"time"
)

// Store 对象存储的最小契约。
// 本服务对存储后端不做任何重试，错误原样上抛由调用方处理。
type Store interface {
	// Upload 将对象写入存储。
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Remove 批量删除对象，遇到首个错误即返回。
	Remove(ctx context.Context, keys []string) error
	// PublicURL 返回对象的公开访问地址（不鉴权）。
	PublicURL(key string) string
	// SignedURL 返回带有效期的预签名只读地址。
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
