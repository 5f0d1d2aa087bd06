package consts

const (
	ApplicationName    = "Photo Vault Server"
	ApplicationVersion = "1.0.0"
)
