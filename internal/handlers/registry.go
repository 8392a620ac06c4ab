package handlers

import "github.com/gin-gonic/gin"

// AppHandlers bundles every HTTP handler the router mounts.
type AppHandlers struct {
	Portfolio *PortfolioHandler
	Booking   *BookingHandler
	Upload    *UploadHandler
	Gallery   *GalleryHandler
}

func (h *AppHandlers) RegisterAll(api *gin.RouterGroup) {
	h.Portfolio.RegisterRoutes(api)
	h.Booking.RegisterRoutes(api)
	h.Upload.RegisterRoutes(api)
	h.Gallery.RegisterRoutes(api)
}
