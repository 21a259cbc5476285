package model

import (
	"localmarket/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID           = "id"
	FieldVendorID     = "vendor_id"
	FieldCategoryID   = "category_id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldPricePerHour = "price_per_hour"
	FieldLocation     = "location"
	FieldPhotos       = "photos"
	FieldIsActive     = "is_active"
)

const DefaultLocation = "Leuven"

// DefaultPhoto is the placeholder stored when a listing has no photos yet.
const DefaultPhoto = "📋"

type Service struct {
	ID           int64          `db:"id"`
	VendorID     int64          `db:"vendor_id"`
	CategoryID   string         `db:"category_id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	PricePerHour float64        `db:"price_per_hour"`
	Location     string         `db:"location"`
	Photos       pq.StringArray `db:"photos"`
	IsActive     bool           `db:"is_active"`
	model.Metadata
}

// Listing is a search result row: a service joined to its vendor, its
// category and the aggregated review figures.
type Listing struct {
	Service
	VendorName    string  `db:"vendor_name"`
	VendorPhoto   *string `db:"vendor_photo"`
	VendorBio     *string `db:"vendor_bio"`
	CategoryName  string  `db:"category_name"`
	CategoryIcon  string  `db:"category_icon"`
	AverageRating float64 `db:"average_rating"`
	ReviewCount   int     `db:"review_count"`
}
