package dto

import (
	"localmarket/internal/domains/category/model"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description *string `json:"description"`
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
	r.Description = model.Description
}

func FromModels(models []model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
