package models

import (
	"gorm.io/datatypes"
)

// PortfolioCategory is the fixed set of gallery categories.
type PortfolioCategory string

const (
	CategoryPortrait   PortfolioCategory = "portrait"
	CategoryEvent      PortfolioCategory = "event"
	CategoryProduct    PortfolioCategory = "product"
	CategoryCommercial PortfolioCategory = "commercial"
	CategoryWedding    PortfolioCategory = "wedding"
	CategoryOther      PortfolioCategory = "other"
)

// PortfolioImage is one entry of a portfolio's ordered image list.
// The first image is the cover.
type PortfolioImage struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt,omitempty"`
}

// Portfolio is a gallery entry grouping one or more images under a title
// and category. The image list is stored as a JSON column; its order is
// the presentation order.
type Portfolio struct {
	BaseModel
	Title       string                               `gorm:"size:100;not null" json:"title"`
	Description string                               `gorm:"size:500;not null" json:"description"`
	Category    PortfolioCategory                    `gorm:"size:20;not null;index" json:"category"`
	Images      datatypes.JSONType[[]PortfolioImage] `gorm:"not null" json:"images"`
	Featured    bool                                 `gorm:"default:false;index" json:"featured"`
}
