package service

import (
	"context"
	"errors"
	"log"
	"time"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/config"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
	"photo-vault-server/internal/storage"

	"gorm.io/gorm"
)

// ImageService 图片记录的增删改查与列表富化。
// 所有放行/拒绝判断都委托给 authz 引擎，这里只负责取资源与执行。
type ImageService struct {
	images   repository.ImageStore
	profiles repository.ProfileStore
	store    storage.Store
}

func NewImageService(images repository.ImageStore, profiles repository.ProfileStore, store storage.Store) *ImageService {
	return &ImageService{images: images, profiles: profiles, store: store}
}

// ImageView 列表返回的图片视图：记录本体 + 所有者邮箱 + 访问地址。
type ImageView struct {
	model.Image
	UserEmail string `json:"user_email"`
	URL       string `json:"url"`
}

// ListImages 按主体可见范围查询图片，附带一小时有效期的签名地址。
// 普通用户的 requestedUserID 会被授权引擎静默忽略。
func (s *ImageService) ListImages(ctx context.Context, p authz.Principal, requestedUserID string) ([]ImageView, error) {
	scope := authz.ScopeForList(p, requestedUserID)
	return s.listWithScope(ctx, scope, true)
}

// ListImagesForAdmin 后台图片列表：全量可见，可按 user_id 收窄，使用公开地址。
func (s *ImageService) ListImagesForAdmin(ctx context.Context, p authz.Principal, requestedUserID string) ([]ImageView, error) {
	scope := authz.ScopeForList(p, requestedUserID)
	return s.listWithScope(ctx, scope, false)
}

func (s *ImageService) listWithScope(ctx context.Context, scope authz.ListScope, signed bool) ([]ImageView, error) {
	images, err := s.images.List(scope)
	if err != nil {
		return nil, err
	}

	emailByID, err := s.ownerEmails(images)
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	ttl := time.Duration(cfg.Storage.SignedURLSeconds) * time.Second

	views := make([]ImageView, 0, len(images))
	for _, img := range images {
		view := ImageView{Image: img, UserEmail: emailByID[img.UserID]}
		if signed {
			url, signErr := s.store.SignedURL(ctx, img.FilePath, ttl)
			if signErr != nil {
				// 签名失败不拦截整个列表，地址留空并记录
				log.Printf("生成签名地址失败: %v, path=%s", signErr, img.FilePath)
			} else {
				view.URL = url
			}
		} else {
			view.URL = s.store.PublicURL(img.FilePath)
		}
		views = append(views, view)
	}
	return views, nil
}

// ownerEmails 批量取所有者邮箱，读侧富化专用。
func (s *ImageService) ownerEmails(images []model.Image) (map[string]string, error) {
	idSet := make(map[string]struct{}, len(images))
	ids := make([]string, 0, len(images))
	for _, img := range images {
		if _, seen := idSet[img.UserID]; !seen {
			idSet[img.UserID] = struct{}{}
			ids = append(ids, img.UserID)
		}
	}

	profiles, err := s.profiles.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	emailByID := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		emailByID[profile.ID] = profile.Email
	}
	return emailByID, nil
}

// UpdateImage 重命名图片。只有所有者可以改名，管理员也不行。
func (s *ImageService) UpdateImage(p authz.Principal, imageID string, fileName string) (*model.Image, error) {
	image, err := s.getImage(imageID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanUpdateImage(p, image.UserID); err != nil {
		return nil, err
	}

	updated, err := s.images.UpdateFileName(imageID, fileName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		return nil, err
	}
	return updated, nil
}

// DeleteImage 删除图片记录，随后尽力删除存储对象。
// 对象删除失败只记录不回滚：记录已删，孤儿对象留待人工清理。
func (s *ImageService) DeleteImage(ctx context.Context, p authz.Principal, imageID string) error {
	image, err := s.getImage(imageID)
	if err != nil {
		return err
	}

	if err := authz.CanDeleteImage(p, image.UserID); err != nil {
		return err
	}

	if err := s.images.Delete(imageID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, []string{image.FilePath}); err != nil {
		log.Printf("删除存储对象失败: %v, path=%s", err, image.FilePath)
	}
	return nil
}

// getImage 取目标图片；缺失返回 NotFound，与 Forbidden 严格区分。
func (s *ImageService) getImage(imageID string) (*model.Image, error) {
	image, err := s.images.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		return nil, err
	}
	return image, nil
}
