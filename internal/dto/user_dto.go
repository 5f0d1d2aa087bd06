package dto

// CreateUserRequest 管理员创建用户请求体。
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// BanUserRequest 封禁/解封请求体。
// IsBanned 用指针以区分 "false" 与 "缺失"。
type BanUserRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	IsBanned *bool  `json:"is_banned" binding:"required"`
}
