package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"photostudio_backend/internal/models"
)

// BookingNotifier is implemented by anything that can tell the studio
// about a new booking request.
type BookingNotifier interface {
	NotifyNewBooking(booking *models.Booking) error
}

// Config holds SMTP delivery settings.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	StudioEmail string
}

// NoopNotifier discards notifications. It stands in for the SMTP
// notifier when no mail server is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyNewBooking(*models.Booking) error { return nil }

// SMTPNotifier delivers booking notifications to the studio inbox.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	cfg    Config
}

func NewSMTPNotifier(cfg Config) (*SMTPNotifier, error) {
	if cfg.Host == "" || cfg.StudioEmail == "" {
		return nil, fmt.Errorf("smtp host and studio email are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
	}, nil
}

// NotifyNewBooking sends a plain-text summary of the booking request.
func (n *SMTPNotifier) NotifyNewBooking(booking *models.Booking) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromEmail, n.cfg.FromName)
	m.SetHeader("To", n.cfg.StudioEmail)
	m.SetHeader("Subject", fmt.Sprintf("New %s booking request from %s", booking.ServiceType, booking.ClientName))
	m.SetBody("text/plain", fmt.Sprintf(
		"A new booking request arrived.\n\n"+
			"Client:   %s <%s> (%s)\n"+
			"Service:  %s\n"+
			"Date:     %s\n"+
			"Duration: %d h\n"+
			"Location: %s\n"+
			"Price:    %.2f\n"+
			"Notes:    %s\n",
		booking.ClientName, booking.ClientEmail, booking.ClientPhone,
		booking.ServiceType,
		booking.BookingDate.Format("2006-01-02"),
		booking.Duration,
		booking.Location,
		booking.Price,
		booking.Notes,
	))

	return n.dialer.DialAndSend(m)
}
