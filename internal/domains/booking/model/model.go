package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"localmarket/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldServiceID     = "service_id"
	FieldBuyerID       = "buyer_id"
	FieldVendorID      = "vendor_id"
	FieldPreferredDate = "preferred_date"
	FieldPreferredTime = "preferred_time"
	FieldMessage       = "message"
	FieldStatus        = "status"
	FieldTotalHours    = "total_hours"
	FieldTotalAmount   = "total_amount"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// TimeOfDay holds a TIME column as its HH:MM:SS text. lib/pq decodes TIME
// into a time.Time anchored at year zero, which database/sql would otherwise
// format into a string field as RFC 3339.
type TimeOfDay string

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDay(v.Format("15:04:05"))
	case []byte:
		*t = TimeOfDay(v)
	case string:
		*t = TimeOfDay(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("unsupported time of day value of type %T", src)
	}

	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}

type Booking struct {
	ID            int64     `db:"id"`
	ServiceID     int64     `db:"service_id"`
	BuyerID       int64     `db:"buyer_id"`
	VendorID      int64     `db:"vendor_id"`
	PreferredDate time.Time `db:"preferred_date"`
	PreferredTime TimeOfDay `db:"preferred_time"`
	Message       *string   `db:"message"`
	Status        string    `db:"status"`
	TotalHours    *float64  `db:"total_hours"`
	TotalAmount   *float64  `db:"total_amount"`
	model.Metadata
}

// BuyerView is a booking listed from the buyer side, joined to the service
// title and the vendor's name.
type BuyerView struct {
	Booking
	ServiceTitle string `db:"service_title"`
	VendorName   string `db:"vendor_name"`
}

// VendorView is a booking listed from the vendor side, joined to the service
// title and the buyer's name.
type VendorView struct {
	Booking
	ServiceTitle string `db:"service_title"`
	BuyerName    string `db:"buyer_name"`
}
