package repositories

import (
	"errors"

	"gorm.io/gorm"

	"photostudio_backend/internal/models"
)

var ErrPortfolioNotFound = errors.New("portfolio not found")

// PortfolioFilter narrows List results. Nil Featured means "no featured
// filter", not "featured=false".
type PortfolioFilter struct {
	Category string
	Featured *bool
}

// PortfolioRepository is the persistence boundary for gallery entries.
// Methods take the *gorm.DB handle per call so callers control pooling
// and transactions.
type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.Portfolio) error
	FindByID(db *gorm.DB, id string) (*models.Portfolio, error)
	FindAll(db *gorm.DB, filter *PortfolioFilter) ([]models.Portfolio, error)
	Update(db *gorm.DB, item *models.Portfolio) error
	Delete(db *gorm.DB, id string) error
}

type portfolioRepository struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{}
}

func (r *portfolioRepository) Create(db *gorm.DB, item *models.Portfolio) error {
	return db.Create(item).Error
}

func (r *portfolioRepository) FindByID(db *gorm.DB, id string) (*models.Portfolio, error) {
	var item models.Portfolio
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns entries newest-first, optionally narrowed by category
// and featured flag.
func (r *portfolioRepository) FindAll(db *gorm.DB, filter *PortfolioFilter) ([]models.Portfolio, error) {
	query := db.Model(&models.Portfolio{})

	if filter != nil {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Featured != nil {
			query = query.Where("featured = ?", *filter.Featured)
		}
	}

	var items []models.Portfolio
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

// Update replaces the full mutable field set of an existing entry.
func (r *portfolioRepository) Update(db *gorm.DB, item *models.Portfolio) error {
	result := db.Model(&models.Portfolio{}).
		Where("id = ?", item.ID).
		Select("Title", "Description", "Category", "Images", "Featured").
		Updates(item)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

func (r *portfolioRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Portfolio{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}
