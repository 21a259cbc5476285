package dto

import (
	"net/http"
	"strconv"

	"localmarket/shared/constant"
	"localmarket/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	Offset  int    `json:"offset"   validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates limit/offset from the HTTP request, applying the
// listing defaults (20/0) when the parameters are absent. Non-numeric or
// negative values are rejected rather than silently coerced.
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	q.Limit = constant.DefaultValueLimit
	q.Offset = constant.DefaultValueOffset

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 0 {
			return failure.BadRequestFromString("limit must be a non-negative integer") //nolint:wrapcheck
		}

		q.Limit = limitInt
	}

	if offset := queryParams.Get(constant.RequestParamOffset); offset != "" {
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			return failure.BadRequestFromString("offset must be a non-negative integer") //nolint:wrapcheck
		}

		q.Offset = offsetInt
	}

	return nil
}
