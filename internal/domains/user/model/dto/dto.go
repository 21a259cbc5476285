package dto

import (
	"localmarket/internal/domains/user/model"
)

// UserResponse is the public account shape embedded in the auth responses.
type UserResponse struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	IsVendor     bool    `json:"isVendor"`
	ProfilePhoto *string `json:"profilePhoto"`
	Bio          *string `json:"bio"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Phone = model.Phone
	r.IsVendor = model.IsVendor
	r.ProfilePhoto = model.ProfilePhoto
	r.Bio = model.Bio
}

type ProfileResponse struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	ProfilePhoto *string `json:"profilePhoto"`
	IsVendor     bool    `json:"isVendor"`
	Location     string  `json:"location"`
}

func (r *ProfileResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Phone = model.Phone
	r.Bio = model.Bio
	r.ProfilePhoto = model.ProfilePhoto
	r.IsVendor = model.IsVendor
	r.Location = model.Location
}

type BecomeVendorRequest struct {
	Bio          *string `json:"bio"          validate:"omitempty"`
	ProfilePhoto *string `json:"profilePhoto" validate:"omitempty,max=255"`
}

type VendorProfileResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Bio          *string `json:"bio"`
	ProfilePhoto *string `json:"profilePhoto"`
	IsVendor     bool    `json:"isVendor"`
}

func (r *VendorProfileResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Bio = model.Bio
	r.ProfilePhoto = model.ProfilePhoto
	r.IsVendor = model.IsVendor
}

type BecomeVendorResponse struct {
	Message string                `json:"message"`
	User    VendorProfileResponse `json:"user"`
}
