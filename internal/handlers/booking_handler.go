package handlers

import (
	"github.com/gin-gonic/gin"

	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/services"
	"photostudio_backend/internal/services/dto"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

// RegisterRoutes mounts the booking resource. Create stays public for the
// booking form; everything else is admin-only.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)

		admin := bookings.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("", h.List)
			admin.GET("/:id", h.Get)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	var query dto.BookingListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	bookings, err := h.bookingService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKList(c, bookings, len(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, booking)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKMessage(c, "Booking deleted successfully")
}
