package service

import (
	"context"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"strings"
	"time"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/config"
	"photo-vault-server/internal/dto"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// 单文件上传的阶段进度：存储写入完成 50，记录注册完成 100。
const (
	progressNone       = 0
	progressUploaded   = 50
	progressRegistered = 100
)

// UploadOutcome 单个文件的上传结果。批量上传时逐文件独立成败。
type UploadOutcome struct {
	FileName string       `json:"file_name"`
	Success  bool         `json:"success"`
	Progress int          `json:"progress"`
	Error    string       `json:"error,omitempty"`
	Image    *model.Image `json:"image,omitempty"`
}

// BatchUploadResult 批量上传的汇总结果。
// Progress 为各文件进度的平均值；Success 仅当全部文件成功才为 true。
type BatchUploadResult struct {
	Success  bool            `json:"success"`
	Progress int             `json:"progress"`
	Files    []UploadOutcome `json:"files"`
}

// ProcessUpload 单文件上传：校验 → 生成存储键 → 写对象 → 注册记录。
// 返回的 error 只用于授权拒绝，文件级失败体现在 outcome 里。
func (s *ImageService) ProcessUpload(ctx context.Context, p authz.Principal, file *multipart.FileHeader) (*UploadOutcome, error) {
	if err := authz.CanCreateImage(p); err != nil {
		return nil, err
	}
	outcome := s.uploadOne(ctx, p, file)
	return &outcome, nil
}

// ProcessBatchUpload 批量上传：各文件并发独立处理，汇总整体结果。
// 单个文件失败不影响其它文件，也不做任何重试。
func (s *ImageService) ProcessBatchUpload(ctx context.Context, p authz.Principal, files []*multipart.FileHeader) (*BatchUploadResult, error) {
	if err := authz.CanCreateImage(p); err != nil {
		return nil, err
	}

	cfg := config.Get()
	if limit := cfg.Upload.BatchLimit; limit > 0 && len(files) > limit {
		return nil, common.NewValidationError(fmt.Sprintf("一次最多上传 %d 个文件", limit))
	}

	concurrency := cfg.Upload.BatchConcurrency
	if concurrency < 1 {
		concurrency = 3
	}

	outcomes := make([]UploadOutcome, len(files))

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			outcomes[i] = s.uploadOne(ctx, p, file)
			return nil
		})
	}
	// 闭包恒返回 nil，Wait 仅用于等待全部文件处理完
	_ = g.Wait()

	result := BatchUploadResult{Success: true, Files: outcomes}
	progressSum := 0
	for _, outcome := range outcomes {
		progressSum += outcome.Progress
		if !outcome.Success {
			result.Success = false
		}
	}
	if len(outcomes) > 0 {
		result.Progress = progressSum / len(outcomes)
	}
	return &result, nil
}

// uploadOne 执行单个文件的完整管线。
// 存储写入与记录注册是两个独立的非原子步骤：写入成功而注册失败时，
// 存储中会留下一个无记录的孤儿对象，当前没有清理/对账机制。
func (s *ImageService) uploadOne(ctx context.Context, p authz.Principal, file *multipart.FileHeader) UploadOutcome {
	outcome := UploadOutcome{FileName: file.Filename, Progress: progressNone}

	ext, err := s.validateFile(file)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	src, err := file.Open()
	if err != nil {
		outcome.Error = "无法读取上传文件"
		return outcome
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		outcome.Error = msg
		return outcome
	}

	key := utils.BuildStorageKey(p.ID, ext)
	contentType := mime.TypeByExtension(ext)

	if err := s.store.Upload(ctx, key, src, file.Size, contentType); err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Progress = progressUploaded

	image, err := s.registerImage(p, dto.CreateImageRecord{
		FileName: file.Filename,
		FilePath: key,
		FileSize: file.Size,
	})
	if err != nil {
		log.Printf("图片记录注册失败，存储对象成为孤儿: %v, path=%s", err, key)
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Progress = progressRegistered
	outcome.Success = true
	outcome.Image = image
	return outcome
}

// validateFile 按配置校验文件大小与扩展名。
func (s *ImageService) validateFile(file *multipart.FileHeader) (string, error) {
	cfg := config.Get()

	maxSizeMB := cfg.Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size <= 0 {
		return "", common.NewValidationError("文件内容为空")
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext, err := utils.SanitizeExt(file.Filename)
	if err != nil {
		return "", common.NewValidationError(err.Error())
	}

	allowed := false
	for _, allowExt := range strings.Split(cfg.Upload.AllowExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", common.NewValidationError(fmt.Sprintf("不支持的文件类型: %s", ext))
	}

	return ext, nil
}

// registerImage 校验记录字段并落库。
// 字段校验与 HTTP 请求体共用同一套声明式规则。
func (s *ImageService) registerImage(owner authz.Principal, record dto.CreateImageRecord) (*model.Image, error) {
	if err := binding.Validator.ValidateStruct(record); err != nil {
		return nil, common.NewValidationError("图片记录字段不合法")
	}

	image := model.Image{
		ID:         uuid.New().String(),
		UserID:     owner.ID,
		FileName:   record.FileName,
		FilePath:   record.FilePath,
		FileSize:   record.FileSize,
		UploadedAt: time.Now(),
	}
	if err := s.images.Create(&image); err != nil {
		return nil, common.NewInternalError("图片记录保存失败")
	}
	return &image, nil
}
