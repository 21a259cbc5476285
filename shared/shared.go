package shared

import (
	"reflect"
	"time"

	"localmarket/shared/constant"
	"localmarket/shared/dto"
)

// TransformFields converts the non-zero fields of a struct into a map of
// columns to update, keyed by the db tag, and stamps updated_at.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = time.Now().UTC()

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
