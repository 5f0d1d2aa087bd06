package service

import (
	"fmt"

	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/repository"
)

// StatService 后台仪表盘统计。
type StatService struct {
	profiles repository.ProfileStore
	images   repository.ImageStore
}

func NewStatService(profiles repository.ProfileStore, images repository.ImageStore) *StatService {
	return &StatService{profiles: profiles, images: images}
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	Banned int64 `json:"banned"`
}

type ImageStats struct {
	Total        int64  `json:"total"`
	StorageBytes int64  `json:"storage_bytes"`
	StorageMB    string `json:"storage_mb"`
	StorageGB    string `json:"storage_gb"`
}

type TopUploader struct {
	Email string `json:"email"`
	Count int64  `json:"count"`
}

type ServerStats struct {
	Users        UserStats     `json:"users"`
	Images       ImageStats    `json:"images"`
	TopUploaders []TopUploader `json:"top_uploaders"`
}

const topUploaderLimit = 5

// GetServerStats 汇总用户数、图片数、存储占用与上传量 Top5。
// 用户口径只统计普通用户，管理员不参与计数。
func (s *StatService) GetServerStats() (*ServerStats, error) {
	totalUsers, err := s.profiles.CountByRole(consts.RoleUser)
	if err != nil {
		return nil, err
	}

	bannedUsers, err := s.profiles.CountBannedByRole(consts.RoleUser)
	if err != nil {
		return nil, err
	}

	totalImages, err := s.images.CountAll()
	if err != nil {
		return nil, err
	}

	totalStorage, err := s.images.SumAllSize()
	if err != nil {
		return nil, err
	}

	topCounts, err := s.images.CountPerOwner(topUploaderLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(topCounts))
	for _, row := range topCounts {
		ids = append(ids, row.UserID)
	}
	profiles, err := s.profiles.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	emailByID := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		emailByID[profile.ID] = profile.Email
	}

	topUploaders := make([]TopUploader, 0, len(topCounts))
	for _, row := range topCounts {
		email := emailByID[row.UserID]
		if email == "" {
			continue
		}
		topUploaders = append(topUploaders, TopUploader{Email: email, Count: row.Count})
	}

	return &ServerStats{
		Users: UserStats{
			Total:  totalUsers,
			Active: totalUsers - bannedUsers,
			Banned: bannedUsers,
		},
		Images: ImageStats{
			Total:        totalImages,
			StorageBytes: totalStorage,
			StorageMB:    fmt.Sprintf("%.2f", float64(totalStorage)/1024/1024),
			StorageGB:    fmt.Sprintf("%.3f", float64(totalStorage)/1024/1024/1024),
		},
		TopUploaders: topUploaders,
	}, nil
}
