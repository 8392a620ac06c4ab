package services_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio_backend/internal/services"
	"photostudio_backend/pkg/apperrors"
)

func newTestUploadService(store *fakeStorage) services.UploadService {
	return services.NewUploadService(store, services.UploadConfig{
		MaxFileSize: 1024,
		MaxFiles:    3,
		Folder:      "portfolio",
	})
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %T: %v", err, err)
	return appErr
}

func TestUploadSingle_Success(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)
	file := makeFileHeader(t, "shot.PNG", "image/png", []byte("png-bytes"))

	result, err := svc.UploadSingle(context.Background(), file)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.ID, ".png"), "id keeps the lowercased extension: %s", result.ID)
	assert.Equal(t, "https://cdn.test/portfolio/"+result.ID, result.URL)

	assert.Equal(t, 1, store.savedCount())
	assert.Equal(t, []byte("png-bytes"), store.saved["portfolio/"+result.ID])
}

func TestUploadSingle_RejectsNonImage(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)
	file := makeFileHeader(t, "contract.pdf", "application/pdf", []byte("%PDF"))

	_, err := svc.UploadSingle(context.Background(), file)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Only image files")

	assert.Equal(t, 0, store.savedCount(), "nothing may reach storage")
}

func TestUploadSingle_RejectsOversize(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)
	file := makeFileHeader(t, "huge.jpg", "image/jpeg", make([]byte, 2048))

	_, err := svc.UploadSingle(context.Background(), file)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	assert.Equal(t, 0, store.savedCount())
}

func TestUploadMultiple_Success(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "a.jpg", "image/jpeg", []byte("aa")),
		makeFileHeader(t, "b.png", "image/png", []byte("bb")),
		makeFileHeader(t, "c.webp", "image/webp", []byte("cc")),
	}

	results, err := svc.UploadMultiple(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, strings.HasSuffix(results[0].ID, ".jpg"))
	assert.True(t, strings.HasSuffix(results[1].ID, ".png"))
	assert.True(t, strings.HasSuffix(results[2].ID, ".webp"))
	for _, r := range results {
		assert.Equal(t, "https://cdn.test/portfolio/"+r.ID, r.URL)
	}
	assert.Equal(t, 3, store.savedCount())
}

func TestUploadMultiple_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestUploadService(newFakeStorage())

	_, err := svc.UploadMultiple(context.Background(), nil)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "No files uploaded", appErr.Message)
}

func TestUploadMultiple_TooManyFiles(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)

	var files []*multipart.FileHeader
	for i := 0; i < 4; i++ {
		files = append(files, makeFileHeader(t, "f.jpg", "image/jpeg", []byte("x")))
	}

	_, err := svc.UploadMultiple(context.Background(), files)
	appErr := requireAppError(t, err)
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)
	assert.Equal(t, 0, store.savedCount())
}

func TestUploadMultiple_OneBadFileRejectsBatch(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "ok.jpg", "image/jpeg", []byte("fine")),
		makeFileHeader(t, "bad.svg", "image/svg+xml", []byte("<svg/>")),
	}

	_, err := svc.UploadMultiple(context.Background(), files)
	requireAppError(t, err)
	assert.Equal(t, 0, store.savedCount(), "batch validation must run before any storage call")
}

func TestUploadDelete(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestUploadService(store)
	ctx := context.Background()

	file := makeFileHeader(t, "shot.jpg", "image/jpeg", []byte("x"))
	result, err := svc.UploadSingle(ctx, file)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, result.ID))
	assert.Equal(t, []string{"portfolio/" + result.ID}, store.deleted)
}

func TestUploadDelete_Missing(t *testing.T) {
	t.Parallel()

	svc := newTestUploadService(newFakeStorage())

	err := svc.Delete(context.Background(), "does-not-exist.jpg")
	appErr := requireAppError(t, err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUploadDelete_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	svc := newTestUploadService(newFakeStorage())

	for _, id := range []string{"", "../secret", "a/b.jpg", `a\b.jpg`} {
		err := svc.Delete(context.Background(), id)
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode, "id %q", id)
	}
}
