package domain

import (
	"context"
	"errors"
)

type CreateCustomerRequest struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	IdentityNo string `json:"identity_no"`
	LicenseNo  string `json:"license_no"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type UpdateCustomerRequest struct {
	ID    string `json:"-"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ListCustomerRequest struct {
	Kind string
	Name string
}

type GetCustomerRequest struct {
	ID string
}

type Response struct {
	ID         string `json:"id"`
	Kind       Kind   `json:"kind"`
	Name       string `json:"name"`
	IdentityNo string `json:"identity_no"`
	LicenseNo  string `json:"license_no,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (*Response, error)
	Update(context.Context, UpdateCustomerRequest) (*Response, error)
	List(context.Context, ListCustomerRequest) ([]Response, error)
	GetByID(context.Context, GetCustomerRequest) (*Response, error)
}

var (
	ErrInvalidKind     = errors.New("invalid_kind")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidIdentity = errors.New("invalid_identity_no")
	ErrInvalidID       = errors.New("invalid_id")
	ErrDuplicate       = errors.New("customer_already_registered")
	ErrNotFound        = errors.New("customer_not_found")
)
