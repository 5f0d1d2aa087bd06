package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/config"
	"photo-vault-server/internal/db"
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
	"photo-vault-server/internal/testutils"
)

type testEnv struct {
	repos    *repository.Repositories
	provider identity.Provider
	store    *testutils.MemoryStore
	services *Services
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	saved := testutils.BaselineEnv()
	t.Cleanup(func() { testutils.RestoreEnv(saved) })
	config.InitConfig(t.TempDir())

	testutils.SetupDB(t)
	repos := repository.NewRepositories(db.DB)
	provider := identity.NewGormProvider(db.DB)
	store := testutils.NewMemoryStore()

	return &testEnv{
		repos:    repos,
		provider: provider,
		store:    store,
		services: NewServices(repos, provider, store),
	}
}

func seedProfile(t *testing.T, id, email, role string, banned bool) authz.Principal {
	t.Helper()
	profile := model.Profile{ID: id, Email: email, Role: role, IsBanned: banned}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("创建资料行失败: %v", err)
	}
	return authz.Principal{ID: id, Email: email, Role: role, IsBanned: banned}
}

func assertServiceErrorCode(t *testing.T, err error, code common.ErrorCode) *common.ServiceError {
	t.Helper()
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError, got: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code=%q, got=%q", code, serviceErr.Code)
	}
	return serviceErr
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}
	files := req.MultipartForm.File["file"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(files))
	}
	return files[0]
}
