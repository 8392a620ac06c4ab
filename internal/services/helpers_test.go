package services_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
)

// makeFileHeader builds a real multipart.FileHeader the way an HTTP
// request would, so size and headers behave like production input.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

// fakeStorage records every call so tests can assert exactly which blobs
// were touched.
type fakeStorage struct {
	mu      sync.Mutex
	saved   map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[path] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, path)
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.saved[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://cdn.test/" + path, nil
}

func (f *fakeStorage) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

// fakePortfolioRepo serves canned records; the db handle is ignored.
type fakePortfolioRepo struct {
	items      []models.Portfolio
	lastFilter *repositories.PortfolioFilter
	err        error
}

func (f *fakePortfolioRepo) Create(db *gorm.DB, item *models.Portfolio) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePortfolioRepo) FindByID(db *gorm.DB, id string) (*models.Portfolio, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, repositories.ErrPortfolioNotFound
}

func (f *fakePortfolioRepo) FindAll(db *gorm.DB, filter *repositories.PortfolioFilter) ([]models.Portfolio, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakePortfolioRepo) Update(db *gorm.DB, item *models.Portfolio) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return repositories.ErrPortfolioNotFound
}

func (f *fakePortfolioRepo) Delete(db *gorm.DB, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPortfolioNotFound
}

// fakeBookingRepo mirrors fakePortfolioRepo for bookings.
type fakeBookingRepo struct {
	bookings   []models.Booking
	lastFilter *repositories.BookingFilter
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *models.Booking) error {
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, repositories.ErrBookingNotFound
}

func (f *fakeBookingRepo) FindAll(db *gorm.DB, filter *repositories.BookingFilter) ([]models.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

func (f *fakeBookingRepo) Update(db *gorm.DB, booking *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == booking.ID {
			f.bookings[i] = *booking
			return nil
		}
	}
	return repositories.ErrBookingNotFound
}

func (f *fakeBookingRepo) Delete(db *gorm.DB, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return repositories.ErrBookingNotFound
}

// fakeNotifier signals on a channel when a notification is delivered.
type fakeNotifier struct {
	delivered chan models.Booking
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{delivered: make(chan models.Booking, 1)}
}

func (f *fakeNotifier) NotifyNewBooking(booking *models.Booking) error {
	f.delivered <- *booking
	return nil
}
