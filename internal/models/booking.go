package models

import "time"

// BookingStatus tracks the lifecycle of a session request. Transitions are
// deliberately unconstrained: an admin update may set any value.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ServiceType mirrors the portfolio categories; a booking requests one of
// the same photography services.
type ServiceType string

const (
	ServicePortrait   ServiceType = "portrait"
	ServiceEvent      ServiceType = "event"
	ServiceProduct    ServiceType = "product"
	ServiceCommercial ServiceType = "commercial"
	ServiceWedding    ServiceType = "wedding"
	ServiceOther      ServiceType = "other"
)

// Booking is a client-submitted request for a photography session.
// ClientEmail is always stored lowercase.
type Booking struct {
	BaseModel
	ClientName  string        `gorm:"not null" json:"clientName"`
	ClientEmail string        `gorm:"not null" json:"clientEmail"`
	ClientPhone string        `gorm:"not null" json:"clientPhone"`
	ServiceType ServiceType   `gorm:"size:20;not null;index" json:"serviceType"`
	BookingDate time.Time     `gorm:"not null;index" json:"bookingDate"`
	Duration    int           `gorm:"not null" json:"duration"` // hours
	Location    string        `gorm:"not null" json:"location"`
	Notes       string        `gorm:"size:500" json:"notes,omitempty"`
	Status      BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Price       float64       `gorm:"not null" json:"price"`
	Paid        bool          `gorm:"default:false" json:"paid"`
}
