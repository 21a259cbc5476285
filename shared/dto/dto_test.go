package dto_test

import (
	"net/http/httptest"
	"testing"

	"localmarket/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "vendor_id",
				Operator: dto.FilterOperatorEq,
				Value:    int64(7),
				Table:    "services",
			},
			wantWhere: "services.vendor_id = :vendor_id",
			wantArgs:  map[string]any{"vendor_id": int64(7)},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "title",
				Operator: dto.FilterOperatorLike,
				Value:    "bike",
				Table:    "services",
			},
			wantWhere: "LOWER(services.title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": "%bike%"},
		},
		{
			name: "greater_eq with explicit arg name",
			filter: dto.Filter{
				ArgName:  "min_price",
				Field:    "price_per_hour",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    10.0,
				Table:    "services",
			},
			wantWhere: "services.price_per_hour >= :min_price",
			wantArgs:  map[string]any{"min_price": 10.0},
		},
		{
			name: "less_eq",
			filter: dto.Filter{
				ArgName:  "max_price",
				Field:    "price_per_hour",
				Operator: dto.FilterOperatorLessEq,
				Value:    50.0,
			},
			wantWhere: "price_per_hour <= :max_price",
			wantArgs:  map[string]any{"max_price": 50.0},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
				Value:    "x",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "category_id",
				Operator: dto.FilterOperatorEq,
				Value:    "tutoring",
				Table:    "services",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						ArgName:  "search",
						Field:    "title",
						Operator: dto.FilterOperatorLike,
						Value:    "math",
						Table:    "services",
					},
					dto.Filter{
						ArgName:  "search",
						Field:    "description",
						Operator: dto.FilterOperatorLike,
						Value:    "math",
						Table:    "services",
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t,
		"(services.category_id = :category_id AND (LOWER(services.title) LIKE LOWER(:search) OR LOWER(services.description) LIKE LOWER(:search)))",
		where)
	assert.Equal(t, map[string]any{
		"category_id": "tutoring",
		"search":      "%math%",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantErr    bool
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", url: "/api/services", wantLimit: 20, wantOffset: 0},
		{name: "explicit values", url: "/api/services?limit=5&offset=10", wantLimit: 5, wantOffset: 10},
		{name: "non-numeric limit", url: "/api/services?limit=abc", wantErr: true},
		{name: "non-numeric offset", url: "/api/services?offset=x", wantErr: true},
		{name: "negative limit", url: "/api/services?limit=-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)

			params := dto.QueryParams{}
			err := params.FromRequest(req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}
