package model

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID          = "id"
	FieldName        = "name"
	FieldIcon        = "icon"
	FieldDescription = "description"
)

type Category struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Icon        string  `db:"icon"`
	Description *string `db:"description"`
}
