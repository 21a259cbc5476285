package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domains/service/model/dto"
)

func TestSearchParams_FromRequest(t *testing.T) {
	t.Run("parses all filters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/services?category=cleaning&search=deep&minPrice=10&maxPrice=40&minRating=4", nil)

		var params dto.SearchParams
		require.NoError(t, params.FromRequest(r))

		assert.Equal(t, "cleaning", params.Category)
		assert.Equal(t, "deep", params.Search)
		require.NotNil(t, params.MinPrice)
		assert.Equal(t, 10.0, *params.MinPrice)
		require.NotNil(t, params.MaxPrice)
		assert.Equal(t, 40.0, *params.MaxPrice)
		require.NotNil(t, params.MinRating)
		assert.Equal(t, 4.0, *params.MinRating)
	})

	t.Run("absent filters stay nil", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/services", nil)

		var params dto.SearchParams
		require.NoError(t, params.FromRequest(r))

		assert.Nil(t, params.MinPrice)
		assert.Nil(t, params.MaxPrice)
		assert.Nil(t, params.MinRating)
	})

	t.Run("rejects non-numeric price", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/services?minPrice=cheap", nil)

		var params dto.SearchParams
		err := params.FromRequest(r)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "minPrice must be numeric")
	})
}

func TestSearchParams_ToFilterGroup(t *testing.T) {
	t.Run("category all is not a filter", func(t *testing.T) {
		params := dto.SearchParams{Category: "all"}

		group := params.ToFilterGroup()

		assert.Len(t, group.Filters, 1)
	})

	t.Run("search adds a grouped or condition", func(t *testing.T) {
		params := dto.SearchParams{Search: "bike"}

		group := params.ToFilterGroup()

		require.Len(t, group.Filters, 2)
		clause, args := group.GetWhereClause()
		assert.Contains(t, clause, "OR")
		assert.Equal(t, "%bike%", args["search"])
	})
}
