package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
)

type listEnvelope struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Data    []map[string]interface{} `json:"data"`
}

func decodeList(t *testing.T, body string) listEnvelope {
	t.Helper()

	var env listEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), "body: %s", body)
	require.True(t, env.Success)
	return env
}

// mustIndex returns the position of want in values. The shared test
// database may hold rows from other runs, so tests assert the relative
// order of their own records rather than absolute positions.
func mustIndex(t *testing.T, values []string, want string) int {
	t.Helper()

	for i, v := range values {
		if v == want {
			return i
		}
	}
	t.Fatalf("value %q not found in %v", want, values)
	return -1
}

func fieldValues(records []map[string]interface{}, field string) []string {
	var out []string
	for _, record := range records {
		if v, ok := record[field].(string); ok {
			out = append(out, v)
		}
	}
	return out
}

func createPortfolioAt(t *testing.T, tx *gorm.DB, title string, createdAt time.Time) {
	t.Helper()

	item := &models.Portfolio{
		Title:       title,
		Description: "ordering seed",
		Category:    models.CategoryPortrait,
		Images:      datatypes.NewJSONType([]models.PortfolioImage{{URL: "/uploads/seed.jpg"}}),
	}
	item.CreatedAt = createdAt
	require.NoError(t, repositories.NewPortfolioRepository().Create(tx, item))
}

func createBookingOn(t *testing.T, tx *gorm.DB, email string, bookingDate time.Time) {
	t.Helper()

	booking := &models.Booking{
		ClientName:  "Ordering Seed",
		ClientEmail: email,
		ClientPhone: "+1 555 0100",
		ServiceType: models.ServicePortrait,
		BookingDate: bookingDate,
		Duration:    2,
		Location:    "Studio A",
		Status:      models.BookingPending,
	}
	require.NoError(t, repositories.NewBookingRepository().Create(tx, booking))
}

func TestPortfolioList_NewestFirst(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	marker := fmt.Sprintf("ord-%d", time.Now().UnixNano())
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	// Inserted oldest-first; listed newest-first.
	createPortfolioAt(t, tx, marker+"-oldest", base)
	createPortfolioAt(t, tx, marker+"-middle", base.Add(10*time.Minute))
	createPortfolioAt(t, tx, marker+"-newest", base.Add(20*time.Minute))

	items, err := repositories.NewPortfolioRepository().FindAll(tx, nil)
	require.NoError(t, err)

	var titles []string
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	assert.Less(t, mustIndex(t, titles, marker+"-newest"), mustIndex(t, titles, marker+"-middle"),
		"newest entry must come before middle")
	assert.Less(t, mustIndex(t, titles, marker+"-middle"), mustIndex(t, titles, marker+"-oldest"),
		"middle entry must come before oldest")

	// Same order through the HTTP surface.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/portfolio", "", nil, tx)
	require.Equal(t, http.StatusOK, res.Code, "body: %s", body)
	httpTitles := fieldValues(decodeList(t, body).Data, "title")
	assert.Less(t, mustIndex(t, httpTitles, marker+"-newest"), mustIndex(t, httpTitles, marker+"-middle"))
	assert.Less(t, mustIndex(t, httpTitles, marker+"-middle"), mustIndex(t, httpTitles, marker+"-oldest"))
}

func TestBookingList_DateAscending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	marker := fmt.Sprintf("ord-%d", time.Now().UnixNano())
	september := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	october := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	december := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	// Inserted out of date order; listed by ascending session date.
	createBookingOn(t, tx, marker+"-oct@test.com", october)
	createBookingOn(t, tx, marker+"-dec@test.com", december)
	createBookingOn(t, tx, marker+"-sep@test.com", september)

	bookings, err := repositories.NewBookingRepository().FindAll(tx, nil)
	require.NoError(t, err)

	var emails []string
	for _, b := range bookings {
		emails = append(emails, b.ClientEmail)
	}
	assert.Less(t, mustIndex(t, emails, marker+"-sep@test.com"), mustIndex(t, emails, marker+"-oct@test.com"),
		"earliest session date must come first")
	assert.Less(t, mustIndex(t, emails, marker+"-oct@test.com"), mustIndex(t, emails, marker+"-dec@test.com"))

	// Same order through the admin HTTP surface.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/bookings", ts.AdminToken(t), nil, tx)
	require.Equal(t, http.StatusOK, res.Code, "body: %s", body)
	httpEmails := fieldValues(decodeList(t, body).Data, "clientEmail")
	assert.Less(t, mustIndex(t, httpEmails, marker+"-sep@test.com"), mustIndex(t, httpEmails, marker+"-oct@test.com"))
	assert.Less(t, mustIndex(t, httpEmails, marker+"-oct@test.com"), mustIndex(t, httpEmails, marker+"-dec@test.com"))
}
