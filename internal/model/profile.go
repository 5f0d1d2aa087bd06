package model

import "time"

// Profile 用户资料行，保存角色与封禁状态。
// 每个身份账号有且仅有一条同 ID 的 Profile；role 创建后不再变更。
type Profile struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email     string    `json:"email" gorm:"not null;index;size:255"`
	Role      string    `json:"role" gorm:"not null;default:user;size:16"`
	IsBanned  bool      `json:"is_banned" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}
