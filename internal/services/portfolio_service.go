package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"
)

// PortfolioService owns the gallery-entry lifecycle. Field shape
// validation lives with the handlers; this layer maps DTOs to records and
// repository misses to API errors.
type PortfolioService interface {
	List(db *gorm.DB, query *dto.PortfolioListQuery) ([]models.Portfolio, error)
	Get(db *gorm.DB, id string) (*models.Portfolio, error)
	Create(db *gorm.DB, req *dto.PortfolioRequest) (*models.Portfolio, error)
	Update(db *gorm.DB, id string, req *dto.PortfolioRequest) (*models.Portfolio, error)
	Delete(db *gorm.DB, id string) error
}

type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
}

func NewPortfolioService(portfolioRepo repositories.PortfolioRepository) PortfolioService {
	return &portfolioService{portfolioRepo: portfolioRepo}
}

func (s *portfolioService) List(db *gorm.DB, query *dto.PortfolioListQuery) ([]models.Portfolio, error) {
	filter := &repositories.PortfolioFilter{}

	if query != nil {
		filter.Category = query.Category
		if query.Featured != "" {
			// Only the literal "true" selects featured records; any other
			// present value filters for featured=false.
			featured := query.Featured == "true"
			filter.Featured = &featured
		}
	}

	items, err := s.portfolioRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if items == nil {
		// An empty collection serializes as [], not null.
		items = []models.Portfolio{}
	}
	return items, nil
}

func (s *portfolioService) Get(db *gorm.DB, id string) (*models.Portfolio, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		return nil, handlePortfolioError(err)
	}
	return item, nil
}

func (s *portfolioService) Create(db *gorm.DB, req *dto.PortfolioRequest) (*models.Portfolio, error) {
	item := portfolioFromRequest(req)

	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

// Update is a full replace of the mutable fields; the handler has already
// required the complete field set.
func (s *portfolioService) Update(db *gorm.DB, id string, req *dto.PortfolioRequest) (*models.Portfolio, error) {
	item := portfolioFromRequest(req)
	item.ID = id

	if err := s.portfolioRepo.Update(db, item); err != nil {
		return nil, handlePortfolioError(err)
	}

	return s.Get(db, id)
}

// Delete removes the record only. Blobs referenced by its image URLs are
// left in place (accepted limitation, no cascade cleanup).
func (s *portfolioService) Delete(db *gorm.DB, id string) error {
	if err := s.portfolioRepo.Delete(db, id); err != nil {
		return handlePortfolioError(err)
	}
	return nil
}

func portfolioFromRequest(req *dto.PortfolioRequest) *models.Portfolio {
	return &models.Portfolio{
		Title:       req.Title,
		Description: req.Description,
		Category:    models.PortfolioCategory(req.Category),
		Images:      datatypes.NewJSONType(req.Images),
		Featured:    req.Featured,
	}
}

func handlePortfolioError(err error) error {
	if apperrors.Is(err, repositories.ErrPortfolioNotFound) {
		return apperrors.NotFound("Portfolio")
	}
	return apperrors.InternalError(err)
}
