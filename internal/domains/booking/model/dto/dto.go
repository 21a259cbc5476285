package dto

import (
	"time"

	"localmarket/internal/domains/booking/model"
	gModel "localmarket/shared/model"
)

type CreateBookingRequest struct {
	ServiceID     int64   `json:"serviceId"     validate:"required"`
	PreferredDate string  `json:"preferredDate" validate:"required"`
	PreferredTime string  `json:"preferredTime" validate:"required"`
	Message       *string `json:"message"       validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(buyerID, vendorID int64) (model.Booking, error) {
	preferredDate, err := time.Parse("2006-01-02", c.PreferredDate)
	if err != nil {
		return model.Booking{}, err // nolint:wrapcheck
	}

	preferredTime := c.PreferredTime
	if _, err := time.Parse("15:04", preferredTime); err != nil {
		if _, err := time.Parse("15:04:05", preferredTime); err != nil {
			return model.Booking{}, err // nolint:wrapcheck
		}
	}

	now := time.Now().UTC()

	return model.Booking{
		ServiceID:     c.ServiceID,
		BuyerID:       buyerID,
		VendorID:      vendorID,
		PreferredDate: preferredDate,
		PreferredTime: model.TimeOfDay(preferredTime),
		Message:       c.Message,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type CreatedBooking struct {
	ID            int64   `json:"id"`
	ServiceID     int64   `json:"serviceId"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	Message       *string `json:"message"`
	Status        string  `json:"status"`
}

type CreateBookingResponse struct {
	Message string         `json:"message"`
	Booking CreatedBooking `json:"booking"`
}

func (r *CreateBookingResponse) FromModel(booking model.Booking) {
	r.Message = "Booking request sent successfully"
	r.Booking = CreatedBooking{
		ID:            booking.ID,
		ServiceID:     booking.ServiceID,
		PreferredDate: booking.PreferredDate.Format("2006-01-02"),
		PreferredTime: string(booking.PreferredTime),
		Message:       booking.Message,
		Status:        booking.Status,
	}
}

type UpdateStatusRequest struct {
	Status      string   `json:"status"      validate:"required,oneof=pending confirmed completed cancelled"`
	TotalHours  *float64 `json:"totalHours"  validate:"omitempty,gte=0"`
	TotalAmount *float64 `json:"totalAmount" validate:"omitempty,gte=0"`
}

type BookingResponse struct {
	ID            int64     `json:"id"`
	ServiceID     int64     `json:"serviceId"`
	BuyerID       int64     `json:"buyerId"`
	VendorID      int64     `json:"vendorId"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	Message       *string   `json:"message"`
	Status        string    `json:"status"`
	TotalHours    *float64  `json:"totalHours"`
	TotalAmount   *float64  `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.ServiceID = booking.ServiceID
	r.BuyerID = booking.BuyerID
	r.VendorID = booking.VendorID
	r.PreferredDate = booking.PreferredDate.Format("2006-01-02")
	r.PreferredTime = string(booking.PreferredTime)
	r.Message = booking.Message
	r.Status = booking.Status
	r.TotalHours = booking.TotalHours
	r.TotalAmount = booking.TotalAmount
	r.CreatedAt = booking.CreatedAt
	r.UpdatedAt = booking.UpdatedAt
}

type UpdateStatusResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BuyerBookingResponse struct {
	BookingResponse
	ServiceTitle string `json:"serviceTitle"`
	VendorName   string `json:"vendorName"`
}

type VendorBookingResponse struct {
	BookingResponse
	ServiceTitle string `json:"serviceTitle"`
	BuyerName    string `json:"buyerName"`
}

func FromBuyerViews(views []model.BuyerView) []BuyerBookingResponse {
	responses := make([]BuyerBookingResponse, len(views))
	for i, view := range views {
		responses[i].FromModel(view.Booking)
		responses[i].ServiceTitle = view.ServiceTitle
		responses[i].VendorName = view.VendorName
	}

	return responses
}

func FromVendorViews(views []model.VendorView) []VendorBookingResponse {
	responses := make([]VendorBookingResponse, len(views))
	for i, view := range views {
		responses[i].FromModel(view.Booking)
		responses[i].ServiceTitle = view.ServiceTitle
		responses[i].BuyerName = view.BuyerName
	}

	return responses
}
