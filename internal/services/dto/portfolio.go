package dto

import "photostudio_backend/internal/models"

// PortfolioRequest is the payload for both create and update. Update is a
// full replace of the mutable fields, so the same required set applies:
// a PUT that omits a required field fails validation instead of silently
// keeping the stored value.
type PortfolioRequest struct {
	Title       string                  `json:"title" validate:"required,max=100"`
	Description string                  `json:"description" validate:"required,max=500"`
	Category    string                  `json:"category" validate:"required,oneof=portrait event product commercial wedding other"`
	Images      []models.PortfolioImage `json:"images" validate:"required,min=1,dive"`
	Featured    bool                    `json:"featured"`
}

// PortfolioListQuery carries the optional list filters. Featured is kept
// as the raw query string: only the literal "true" selects featured
// records, any other present value filters for featured=false.
type PortfolioListQuery struct {
	Category string `form:"category" validate:"omitempty,oneof=portrait event product commercial wedding other"`
	Featured string `form:"featured"`
}
