package model

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldServiceID = "service_id"
	FieldBookingID = "booking_id"
	FieldBuyerID   = "buyer_id"
	FieldVendorID  = "vendor_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Review rows are written by no endpoint yet; they feed the listing
// aggregates and the schema keeps them for the upcoming review flow.
type Review struct {
	ID        int64   `db:"id"`
	ServiceID int64   `db:"service_id"`
	BookingID int64   `db:"booking_id"`
	BuyerID   int64   `db:"buyer_id"`
	VendorID  int64   `db:"vendor_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
}
