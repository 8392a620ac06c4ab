package dto

// CreateBookingRequest is the public booking form payload. Status and
// paid are not accepted here; new bookings always start pending/unpaid.
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName" validate:"required"`
	ClientEmail string  `json:"clientEmail" validate:"required,email"`
	ClientPhone string  `json:"clientPhone" validate:"required"`
	ServiceType string  `json:"serviceType" validate:"required,oneof=portrait event product commercial wedding other"`
	BookingDate string  `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// UpdateBookingRequest is the admin update payload: a full replace of the
// mutable fields, including status and payment state. Status transitions
// are unconstrained.
type UpdateBookingRequest struct {
	ClientName  string  `json:"clientName" validate:"required"`
	ClientEmail string  `json:"clientEmail" validate:"required,email"`
	ClientPhone string  `json:"clientPhone" validate:"required"`
	ServiceType string  `json:"serviceType" validate:"required,oneof=portrait event product commercial wedding other"`
	BookingDate string  `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Price       float64 `json:"price" validate:"gte=0"`
	Paid        bool    `json:"paid"`
}

// BookingListQuery carries the optional admin list filters.
type BookingListQuery struct {
	Status      string `form:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	ServiceType string `form:"serviceType" validate:"omitempty,oneof=portrait event product commercial wedding other"`
}
