package consts

// 用户角色。角色在创建时即固定，系统内不存在提权路径。
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// gin Context 中存放当前请求主体信息的键。
const (
	CtxAccountID    = "account_id"
	CtxAccountEmail = "account_email"
	CtxPrincipal    = "principal"
)
