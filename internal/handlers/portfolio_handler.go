package handlers

import (
	"github.com/gin-gonic/gin"

	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/services"
	"photostudio_backend/internal/services/dto"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

// RegisterRoutes mounts the portfolio resource. Reads are public; every
// mutation requires the admin role.
func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", h.List)
		portfolio.GET("/:id", h.Get)

		admin := portfolio.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	var query dto.PortfolioListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	items, err := h.portfolioService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKList(c, items, len(items))
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolioService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, item)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.PortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, item)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req dto.PortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, item)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolioService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKMessage(c, "Portfolio deleted successfully")
}
