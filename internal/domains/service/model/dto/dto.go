package dto

import (
	"net/http"
	"strconv"
	"time"

	"localmarket/internal/domains/service/model"
	gDto "localmarket/shared/dto"
	"localmarket/shared/failure"
	gModel "localmarket/shared/model"
)

// SearchParams carries the optional listing filters. Numeric filters are
// pointers so that "absent" and "zero" stay distinguishable.
type SearchParams struct {
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	gDto.QueryParams
}

func (p *SearchParams) FromRequest(r *http.Request) error {
	if err := p.QueryParams.FromRequest(r); err != nil {
		return err // nolint:wrapcheck
	}

	query := r.URL.Query()

	p.Category = query.Get("category")
	p.Search = query.Get("search")

	for param, target := range map[string]**float64{
		"minPrice":  &p.MinPrice,
		"maxPrice":  &p.MaxPrice,
		"minRating": &p.MinRating,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return failure.BadRequestFromString(param + " must be numeric") // nolint:wrapcheck
		}

		*target = &value
	}

	return nil
}

// ToFilterGroup converts the filters into the WHERE conditions of the search
// query. The minimum rating is excluded here: it constrains an aggregate and
// belongs in the HAVING clause.
func (p *SearchParams) ToFilterGroup() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    "s",
		},
	}

	if p.Category != "" && p.Category != "all" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Value:    p.Category,
			Operator: gDto.FilterOperatorEq,
			Table:    "s",
		})
	}

	if p.Search != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search",
					Field:    model.FieldTitle,
					Value:    p.Search,
					Operator: gDto.FilterOperatorLike,
					Table:    "s",
				},
				gDto.Filter{
					ArgName:  "search",
					Field:    model.FieldDescription,
					Value:    p.Search,
					Operator: gDto.FilterOperatorLike,
					Table:    "s",
				},
			},
		})
	}

	if p.MinPrice != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPricePerHour,
			Value:    *p.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    "s",
		})
	}

	if p.MaxPrice != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPricePerHour,
			Value:    *p.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    "s",
		})
	}

	return gDto.FilterGroup{Filters: filters}
}

type CreateServiceRequest struct {
	Title        string  `json:"title"        validate:"required,max=255"`
	Description  string  `json:"description"  validate:"required"`
	PricePerHour float64 `json:"pricePerHour" validate:"required,gt=0"`
	CategoryID   string  `json:"categoryId"   validate:"required,max=50"`
}

func (r *CreateServiceRequest) ToModel(vendorID int64) model.Service {
	now := time.Now().UTC()

	return model.Service{
		VendorID:     vendorID,
		CategoryID:   r.CategoryID,
		Title:        r.Title,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		Location:     model.DefaultLocation,
		Photos:       []string{model.DefaultPhoto},
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type ListingResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	CategoryName string    `json:"categoryName"`
	CategoryIcon string    `json:"categoryIcon"`
	VendorID     int64     `json:"vendorId"`
	VendorName   string    `json:"vendorName"`
	VendorPhoto  *string   `json:"vendorPhoto"`
	VendorBio    *string   `json:"vendorBio"`
	Photos       []string  `json:"photos"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *ListingResponse) FromModel(listing model.Listing) {
	r.ID = listing.ID
	r.Title = listing.Title
	r.Description = listing.Description
	r.Price = listing.PricePerHour
	r.Category = listing.CategoryID
	r.CategoryName = listing.CategoryName
	r.CategoryIcon = listing.CategoryIcon
	r.VendorID = listing.VendorID
	r.VendorName = listing.VendorName
	r.VendorPhoto = listing.VendorPhoto
	r.VendorBio = listing.VendorBio
	r.Photos = listing.Photos
	r.Rating = listing.AverageRating
	r.ReviewCount = listing.ReviewCount
	r.Location = listing.Location
	r.CreatedAt = listing.CreatedAt

	if len(r.Photos) == 0 {
		r.Photos = []string{model.DefaultPhoto}
	}
}

func FromModels(listings []model.Listing) []ListingResponse {
	responses := make([]ListingResponse, len(listings))
	for i, listing := range listings {
		responses[i].FromModel(listing)
	}

	return responses
}

type CreatedService struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Photos      []string `json:"photos"`
	VendorID    int64    `json:"vendorId"`
}

type CreateServiceResponse struct {
	Message string         `json:"message"`
	Service CreatedService `json:"service"`
}

func (r *CreateServiceResponse) FromModel(service model.Service) {
	r.Message = "Service created successfully"
	r.Service = CreatedService{
		ID:          service.ID,
		Title:       service.Title,
		Description: service.Description,
		Price:       service.PricePerHour,
		Category:    service.CategoryID,
		Photos:      service.Photos,
		VendorID:    service.VendorID,
	}
}
