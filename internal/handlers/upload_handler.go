package handlers

import (
	"github.com/gin-gonic/gin"

	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/services"
	"photostudio_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// RegisterRoutes mounts the upload endpoints; the whole group is admin-only.
func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))
	{
		upload.POST("/single", h.UploadSingle)
		upload.POST("/multiple", h.UploadMultiple)
		upload.DELETE("/:id", h.Delete)
	}
}

// UploadSingle accepts one multipart file under the "image" field.
func (h *UploadHandler) UploadSingle(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No file uploaded"))
		return
	}

	result, err := h.uploadService.UploadSingle(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, result)
}

// UploadMultiple accepts up to the configured maximum of files under the
// "images" field. The batch is rejected wholesale when any file is invalid.
func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form"))
		return
	}

	files := form.File["images"]
	results, err := h.uploadService.UploadMultiple(c.Request.Context(), files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKList(c, results, len(results))
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploadService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKMessage(c, "Image deleted successfully")
}
