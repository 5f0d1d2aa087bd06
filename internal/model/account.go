package model

import "time"

// Account 身份提供方的登录账号记录。
// 仅由 identity.Provider 读写，业务层一律通过 Profile 认识用户。
type Account struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email     string    `json:"email" gorm:"unique;not null;size:255"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
