package utils

import (
	"errors"
	"fmt"
	"photo-vault-server/internal/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 登录会话令牌的载荷。
// 只携带身份标识（id、email），角色与封禁状态永远不进入令牌——
// 这两者属于权限敏感数据，必须在每次请求时从资料表重新读取。
type SessionClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"` // "session"
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

func GenerateSessionToken(id string, email string, duration time.Duration) (string, error) {
	claims := SessionClaims{
		ID:    id,
		Email: email,
		Type:  "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    "photo-vault-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		if claims.Type != "session" {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
