package handlers

import (
	"github.com/gin-gonic/gin"

	"photostudio_backend/internal/services"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gallery/carousel", h.Carousel)
	r.GET("/carousel/images", h.StaticImages)
}

// Carousel returns every portfolio image URL in randomized order, falling
// back to the configured defaults when no portfolio items exist yet.
func (h *GalleryHandler) Carousel(c *gin.Context) {
	db := h.GetDB(c)

	images, err := h.galleryService.BuildCarousel(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKList(c, images, len(images))
}

// StaticImages lists the carousel files shipped with the frontend build.
func (h *GalleryHandler) StaticImages(c *gin.Context) {
	images, err := h.galleryService.StaticImages()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"images":  images,
	})
}
