package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"photostudio_backend/internal/services/dto"
	"photostudio_backend/internal/storage"
	"photostudio_backend/pkg/apperrors"
)

// UploadConfig bounds what the ingestion service accepts.
type UploadConfig struct {
	MaxFileSize  int64
	MaxFiles     int
	AllowedTypes []string
	Folder       string // logical folder prefixed to every stored key
}

// UploadService validates incoming files and hands them to the configured
// storage adapter. Batches are all-or-nothing from the caller's view: the
// whole call fails on the first bad file or storage error, although blobs
// already stored by sibling goroutines of that batch are not rolled back.
type UploadService interface {
	UploadSingle(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResult, error)
	UploadMultiple(ctx context.Context, files []*multipart.FileHeader) ([]dto.UploadResult, error)
	Delete(ctx context.Context, id string) error
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) UploadService {
	if config.MaxFileSize == 0 {
		config.MaxFileSize = 5 * 1024 * 1024
	}
	if config.MaxFiles == 0 {
		config.MaxFiles = 10
	}
	if len(config.AllowedTypes) == 0 {
		config.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	if config.Folder == "" {
		config.Folder = "portfolio"
	}

	return &uploadService{
		storage: store,
		config:  config,
	}
}

func (s *uploadService) UploadSingle(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResult, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("No file uploaded")
	}
	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	result, err := s.store(ctx, file)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UploadMultiple validates the whole batch before any storage call, then
// fans the uploads out concurrently and waits for all of them or for the
// first failure.
func (s *uploadService) UploadMultiple(ctx context.Context, files []*multipart.FileHeader) ([]dto.UploadResult, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("No files uploaded")
	}
	if len(files) > s.config.MaxFiles {
		return nil, apperrors.ErrTooManyFiles.WithDetails(map[string]interface{}{
			"max":      s.config.MaxFiles,
			"received": len(files),
		})
	}

	for _, file := range files {
		if err := s.validateFile(file); err != nil {
			return nil, err
		}
	}

	results := make([]dto.UploadResult, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			result, err := s.store(gctx, file)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Delete removes an asset by the identifier returned at upload time. A
// missing asset is reported as not-found, never silently swallowed.
func (s *uploadService) Delete(ctx context.Context, id string) error {
	if id == "" || strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return apperrors.NewBadRequestError("Invalid file identifier")
	}

	path := s.objectPath(id)

	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return apperrors.StorageError(err)
	}
	if !exists {
		return apperrors.NotFound("File")
	}

	if err := s.storage.Delete(ctx, path); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

// validateFile checks the declared MIME type and size. It runs before any
// storage call is attempted.
func (s *uploadService) validateFile(file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")

	allowed := false
	for _, t := range s.config.AllowedTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.ErrInvalidFileType.WithDetails(map[string]interface{}{
			"received": contentType,
			"allowed":  s.config.AllowedTypes,
		})
	}

	if file.Size > s.config.MaxFileSize {
		return apperrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"max_bytes":  s.config.MaxFileSize,
			"size_bytes": file.Size,
		})
	}

	return nil
}

func (s *uploadService) store(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResult, error) {
	id := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	path := s.objectPath(id)

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.StorageError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	if err := s.storage.Save(ctx, path, src, file.Header.Get("Content-Type")); err != nil {
		return nil, apperrors.StorageError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.UploadResult{URL: url, ID: id}, nil
}

func (s *uploadService) objectPath(id string) string {
	return fmt.Sprintf("%s/%s", s.config.Folder, id)
}
