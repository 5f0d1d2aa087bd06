package dto

// 图片相关请求的声明式校验结构。
// binding 标签即是本服务的"schema validator"：
// 任何字段形态不合法的请求在进入授权逻辑之前就被拒绝。

// CreateImageRecord 图片记录注册时的字段约束。
// file_path 由服务端生成，这里的校验约束的是服务端自身的产物。
type CreateImageRecord struct {
	FileName string `json:"file_name" binding:"required,min=1"`
	FilePath string `json:"file_path" binding:"required,min=1"`
	FileSize int64  `json:"file_size" binding:"required,gt=0"`
}

// ImageIDUri 路径参数中的图片 ID。
type ImageIDUri struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// UpdateImageRequest 图片改名请求体。
type UpdateImageRequest struct {
	FileName string `json:"file_name" binding:"required,min=1"`
}

// ListImagesQuery 列表查询参数。user_id 过滤仅对管理员生效。
type ListImagesQuery struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}
