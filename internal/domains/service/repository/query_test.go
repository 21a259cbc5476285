package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domains/service/model/dto"
)

func TestBuildSearchQuery(t *testing.T) {
	t.Run("without rating threshold", func(t *testing.T) {
		query, args := buildSearchQuery(dto.SearchParams{})

		assert.NotContains(t, query, "HAVING")
		assert.NotContains(t, args, "min_rating")
		assert.Contains(t, query, "GROUP BY s.id, u.id, c.id")
		assert.Contains(t, query, "ORDER BY s.created_at DESC LIMIT :limit OFFSET :offset")
	})

	t.Run("rating threshold lands in HAVING after GROUP BY", func(t *testing.T) {
		minRating := 4.0
		query, args := buildSearchQuery(dto.SearchParams{MinRating: &minRating})

		having := "HAVING COALESCE(AVG(r.rating), 0) >= :min_rating"
		require.Contains(t, query, having)
		assert.Equal(t, 4.0, args["min_rating"])

		groupAt := strings.Index(query, "GROUP BY s.id, u.id, c.id")
		havingAt := strings.Index(query, having)
		orderAt := strings.Index(query, "ORDER BY s.created_at DESC")
		require.NotEqual(t, -1, groupAt)
		require.NotEqual(t, -1, orderAt)
		assert.Greater(t, havingAt, groupAt)
		assert.Greater(t, orderAt, havingAt)

		// the threshold must never be spliced into the SQL text
		assert.NotContains(t, query, ">= 4")
	})

	t.Run("filters arrive as named parameters", func(t *testing.T) {
		minPrice := 10.0
		query, args := buildSearchQuery(dto.SearchParams{
			Category: "cleaning",
			Search:   "deep",
			MinPrice: &minPrice,
		})

		assert.Contains(t, query, "s.category_id = :")
		assert.Contains(t, query, "LOWER(s.title) LIKE LOWER(:search)")
		assert.Contains(t, query, "s.price_per_hour >= :min_price")
		assert.Equal(t, "cleaning", args["category_id"])
		assert.Equal(t, "%deep%", args["search"])
		assert.Equal(t, 10.0, args["min_price"])
	})
}
