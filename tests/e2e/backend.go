//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	FakeCourtID       = "court-1"
	FakeSlotPrice     = 200000
	FakeServiceID     = "svc-water"
	FakeServicePrice  = 10000
	FakeVoucherCode   = "WELCOME10"
	fakeOpenHour      = 5
	fakeCloseHour     = 23
	fakeSlotLengthHrs = 2
)

// FakeBackend stands in for the booking backend the BFF talks to.
type FakeBackend struct {
	server *httptest.Server

	mu            sync.Mutex
	booked        map[string]bool // date + "T" + startTime
	bookings      []map[string]any
	bookingStatus int
	tokens        []string
}

func NewFakeBackend() *FakeBackend {
	f := &FakeBackend{booked: make(map[string]bool)}

	router := gin.New()
	router.Use(f.recordToken)
	router.GET("/courts", f.listCourts)
	router.GET("/courts/:id", f.getCourt)
	router.GET("/courts/:id/timeslots", f.listTimeSlots)
	router.GET("/services", f.listServices)
	router.GET("/vouchers", f.listVouchers)
	router.POST("/bookings", f.createBooking)

	f.server = httptest.NewServer(router)
	return f
}

func (f *FakeBackend) URL() string { return f.server.URL }
func (f *FakeBackend) Close()      { f.server.Close() }

// Reset forgets bookings and failure modes between subtests.
func (f *FakeBackend) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.booked = make(map[string]bool)
	f.bookings = nil
	f.bookingStatus = 0
	f.tokens = nil
}

// MarkBooked makes the slot starting at start ("HH:MM") on date unavailable.
func (f *FakeBackend) MarkBooked(date, start string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.booked[date+"T"+start] = true
}

// FailBookingsWith makes POST /bookings answer status until Reset.
func (f *FakeBackend) FailBookingsWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookingStatus = status
}

func (f *FakeBackend) Bookings() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.bookings...)
}

func (f *FakeBackend) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func (f *FakeBackend) recordToken(c *gin.Context) {
	f.mu.Lock()
	f.tokens = append(f.tokens, c.GetHeader("Authorization"))
	f.mu.Unlock()
	c.Next()
}

func (f *FakeBackend) listCourts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": []gin.H{
		fakeCourt(FakeCourtID, "Court A", "active"),
		fakeCourt("court-2", "Court B", "maintenance"),
	}})
}

func (f *FakeBackend) getCourt(c *gin.Context) {
	switch c.Param("id") {
	case FakeCourtID:
		c.JSON(http.StatusOK, gin.H{"data": fakeCourt(FakeCourtID, "Court A", "active")})
	case "court-2":
		c.JSON(http.StatusOK, gin.H{"data": fakeCourt("court-2", "Court B", "maintenance")})
	default:
		c.JSON(http.StatusNotFound, gin.H{"message": "court not found"})
	}
}

func (f *FakeBackend) listTimeSlots(c *gin.Context) {
	date := c.Query("date")

	f.mu.Lock()
	defer f.mu.Unlock()

	slots := make([]gin.H, 0)
	for h := fakeOpenHour; h+fakeSlotLengthHrs <= fakeCloseHour; h += fakeSlotLengthHrs {
		start := fmt.Sprintf("%02d:00", h)
		status := "available"
		if f.booked[date+"T"+start] {
			status = "booked"
		}
		slots = append(slots, gin.H{
			"id":        fmt.Sprintf("%s-%s", date, start),
			"startTime": start + ":00",
			"endTime":   fmt.Sprintf("%02d:00:00", h+fakeSlotLengthHrs),
			"price":     FakeSlotPrice,
			"status":    status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": slots})
}

func (f *FakeBackend) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"id": FakeServiceID, "name": "Mineral water", "description": "500ml", "price": FakeServicePrice, "category": "Drinks"},
		{"id": "svc-racket", "name": "Racket rental", "description": "", "price": 50000, "category": "Equipment"},
	})
}

func (f *FakeBackend) listVouchers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": []gin.H{
		{"id": "v-1", "code": FakeVoucherCode, "name": "Welcome", "discountType": "PERCENTAGE", "discountValue": 10, "minOrderAmount": 200000, "maxDiscount": 50000},
		{"id": "v-2", "code": "WEEKEND20", "name": "Weekend", "discountType": "PERCENTAGE", "discountValue": 20, "minOrderAmount": 300000},
	}})
}

func (f *FakeBackend) createBooking(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bookingStatus != 0 {
		c.JSON(f.bookingStatus, gin.H{"message": "booking failed"})
		return
	}
	key := fmt.Sprintf("%v", body["date"]) + "T" + fmt.Sprintf("%v", body["startTime"])
	if f.booked[key] {
		c.JSON(http.StatusConflict, gin.H{"message": "slot already booked"})
		return
	}
	f.booked[key] = true
	f.bookings = append(f.bookings, body)

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"id":          fmt.Sprintf("bk-%d", len(f.bookings)),
		"status":      "pending",
		"totalAmount": fakeTotal(body),
	}})
}

// fakeTotal prices a booking request the way the backend would.
func fakeTotal(body map[string]any) int64 {
	total := int64(FakeSlotPrice)
	lines, _ := body["services"].([]any)
	for _, raw := range lines {
		line, _ := raw.(map[string]any)
		qty, _ := line["quantity"].(float64)
		switch line["serviceId"] {
		case FakeServiceID:
			total += int64(qty) * FakeServicePrice
		case "svc-racket":
			total += int64(qty) * 50000
		}
	}
	if code, _ := body["voucherCode"].(string); code == FakeVoucherCode {
		total -= min(total/10, 50000)
	}
	return total
}

func fakeCourt(id, name, status string) gin.H {
	return gin.H{"id": id, "name": name, "description": "", "status": status}
}
