package api

import (
	"net/http"
	"strconv"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PassengerID int64 `json:"passenger_id" binding:"required"`
	FlightID    int64 `json:"flight_id" binding:"required"`
	ClassID     int64 `json:"class_id" binding:"required"`
}

type confirmBookingRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	AmountCents   int64  `json:"amount_cents" binding:"required"`
}

type checkInRequest struct {
	SeatNumber string `json:"seat_number" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	PassengerID   int64  `json:"passenger_id"`
	FlightID      int64  `json:"flight_id"`
	ClassID       int64  `json:"class_id"`
	SeatNumber    string `json:"seat_number,omitempty"`
	BookingDate   string `json:"booking_date"`
	Status        string `json:"status"`
	TotalCents    int64  `json:"total_cents"`
	PassengerName string `json:"passenger_name,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		PassengerID:   b.PassengerID,
		FlightID:      b.FlightID,
		ClassID:       b.ClassID,
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		Status:        string(b.Status),
		TotalCents:    b.TotalCents,
		PassengerName: b.PassengerName,
		FlightNumber:  b.FlightNumber,
		ClassName:     b.ClassName,
	}
	if b.SeatNumber != nil {
		resp.SeatNumber = *b.SeatNumber
	}
	return resp
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.GET("/reference/:ref", h.getByReference)
	router.GET("/:id/transactions", h.listTransactions)
	router.POST("/:id/confirm", h.confirm)
	router.POST("/:id/cancel", h.cancel)
	router.POST("/:id/checkin", h.checkIn)
	router.PATCH("/:id/status", h.updateStatus)
}

// RegisterPassengerRoutes hangs the per-passenger booking listing off the
// passengers group.
func (h *BookingHandler) RegisterPassengerRoutes(router *gin.RouterGroup) {
	router.GET("/:id/bookings", h.listByPassenger)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		PassengerID: req.PassengerID,
		FlightID:    req.FlightID,
		ClassID:     req.ClassID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) getByReference(c *gin.Context) {
	found, err := h.service.GetBookingByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) listByPassenger(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bookings, err := h.service.ListBookingsByPassenger(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *BookingHandler) listTransactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	txns, err := h.service.ListTransactions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmed, err := h.service.ConfirmBooking(c.Request.Context(), id, req.PaymentMethod, req.AmountCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(confirmed))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cancelled, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}

func (h *BookingHandler) checkIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkedIn, err := h.service.CheckIn(c.Request.Context(), id, req.SeatNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(checkedIn))
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateBookingStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
