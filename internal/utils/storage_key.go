package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 存储键中允许的扩展名形态：点号加小写字母数字。
// 扩展名取自客户端文件名，必须经过该校验后才能参与键拼接，
// 防止借助文件名注入路径分隔符或 ".." 穿越。
var extPattern = regexp.MustCompile(`^\.[a-z0-9]+$`)

// SanitizeExt 从原始文件名提取并规范化扩展名。
func SanitizeExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		return "", errors.New("无法识别文件类型")
	}
	if !extPattern.MatchString(ext) {
		return "", errors.New("非法的文件扩展名")
	}
	return ext, nil
}

// BuildStorageKey 生成对象存储键：<ownerID>/<毫秒时间戳>_<随机后缀><ext>。
// 键以所有者 ID 为命名空间前缀，不同用户之间不可能发生键冲突。
func BuildStorageKey(ownerID string, ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s/%d_%s%s", ownerID, time.Now().UnixMilli(), suffix, ext)
}
