package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"photostudio_backend/internal/email"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"
)

const bookingDateLayout = "2006-01-02"

// BookingService owns the session-request lifecycle. Create is reachable
// from the public booking form; everything else is admin territory.
type BookingService interface {
	List(db *gorm.DB, query *dto.BookingListQuery) ([]models.Booking, error)
	Get(db *gorm.DB, id string) (*models.Booking, error)
	Create(db *gorm.DB, req *dto.CreateBookingRequest) (*models.Booking, error)
	Update(db *gorm.DB, id string, req *dto.UpdateBookingRequest) (*models.Booking, error)
	Delete(db *gorm.DB, id string) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	notifier    email.BookingNotifier
}

func NewBookingService(bookingRepo repositories.BookingRepository, notifier email.BookingNotifier) BookingService {
	if notifier == nil {
		notifier = email.NoopNotifier{}
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

func (s *bookingService) List(db *gorm.DB, query *dto.BookingListQuery) ([]models.Booking, error) {
	filter := &repositories.BookingFilter{}
	if query != nil {
		filter.Status = query.Status
		filter.ServiceType = query.ServiceType
	}

	bookings, err := s.bookingRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if bookings == nil {
		// An empty collection serializes as [], not null.
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) Get(db *gorm.DB, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(db, id)
	if err != nil {
		return nil, handleBookingError(err)
	}
	return booking, nil
}

// Create stores a new pending booking. The client email is normalized to
// lowercase before it is persisted. Notification delivery is best-effort
// and never fails the request.
func (s *bookingService) Create(db *gorm.DB, req *dto.CreateBookingRequest) (*models.Booking, error) {
	bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid booking date")
	}

	booking := &models.Booking{
		ClientName:  req.ClientName,
		ClientEmail: strings.ToLower(req.ClientEmail),
		ClientPhone: req.ClientPhone,
		ServiceType: models.ServiceType(req.ServiceType),
		BookingDate: bookingDate,
		Duration:    req.Duration,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      models.BookingPending,
		Price:       req.Price,
		Paid:        false,
	}

	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go func(b models.Booking) {
		if err := s.notifier.NotifyNewBooking(&b); err != nil {
			logger.Error("failed to send booking notification",
				"booking_id", b.ID, "error", err)
		}
	}(*booking)

	return booking, nil
}

// Update is a full replace of the mutable fields. Status transitions are
// not constrained: an admin may set any of the known states.
func (s *bookingService) Update(db *gorm.DB, id string, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid booking date")
	}

	booking := &models.Booking{
		ClientName:  req.ClientName,
		ClientEmail: strings.ToLower(req.ClientEmail),
		ClientPhone: req.ClientPhone,
		ServiceType: models.ServiceType(req.ServiceType),
		BookingDate: bookingDate,
		Duration:    req.Duration,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      models.BookingStatus(req.Status),
		Price:       req.Price,
		Paid:        req.Paid,
	}
	booking.ID = id

	if err := s.bookingRepo.Update(db, booking); err != nil {
		return nil, handleBookingError(err)
	}

	return s.Get(db, id)
}

func (s *bookingService) Delete(db *gorm.DB, id string) error {
	if err := s.bookingRepo.Delete(db, id); err != nil {
		return handleBookingError(err)
	}
	return nil
}

func handleBookingError(err error) error {
	if apperrors.Is(err, repositories.ErrBookingNotFound) {
		return apperrors.NotFound("Booking")
	}
	return apperrors.InternalError(err)
}
