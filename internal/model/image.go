package model

import "time"

// Image 图片记录。FilePath 是对象存储键，由服务端生成，客户端不可指定。
type Image struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	FileName   string    `json:"file_name" gorm:"not null;size:255"`
	FilePath   string    `json:"file_path" gorm:"not null;unique"`
	FileSize   int64     `json:"file_size" gorm:"not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"not null;index"`
	Profile    Profile   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
