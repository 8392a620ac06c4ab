package repositories

import (
	"errors"

	"gorm.io/gorm"

	"photostudio_backend/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingFilter narrows List results by status and/or service type.
type BookingFilter struct {
	Status      string
	ServiceType string
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	FindAll(db *gorm.DB, filter *BookingFilter) ([]models.Booking, error)
	Update(db *gorm.DB, booking *models.Booking) error
	Delete(db *gorm.DB, id string) error
}

type bookingRepository struct{}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindAll returns bookings by ascending session date, the order the studio
// works through them. This deliberately differs from the portfolio's
// newest-first listing.
func (r *bookingRepository) FindAll(db *gorm.DB, filter *BookingFilter) ([]models.Booking, error) {
	query := db.Model(&models.Booking{})

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.ServiceType != "" {
			query = query.Where("service_type = ?", filter.ServiceType)
		}
	}

	var bookings []models.Booking
	err := query.Order("booking_date ASC").Find(&bookings).Error
	return bookings, err
}

// Update replaces the full mutable field set, including status and
// payment state.
func (r *bookingRepository) Update(db *gorm.DB, booking *models.Booking) error {
	result := db.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Select("ClientName", "ClientEmail", "ClientPhone", "ServiceType",
			"BookingDate", "Duration", "Location", "Notes", "Status", "Price", "Paid").
		Updates(booking)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
