package model

import (
	"localmarket/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldName         = "name"
	FieldPhone        = "phone"
	FieldBio          = "bio"
	FieldProfilePhoto = "profile_photo"
	FieldIsVendor     = "is_vendor"
	FieldLocation     = "location"
)

const DefaultLocation = "Leuven"

type User struct {
	ID           int64   `db:"id"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Name         string  `db:"name"`
	Phone        *string `db:"phone"`
	Bio          *string `db:"bio"`
	ProfilePhoto *string `db:"profile_photo"`
	IsVendor     bool    `db:"is_vendor"`
	Location     string  `db:"location"`
	model.Metadata
}
