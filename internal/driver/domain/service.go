package domain

import (
	"context"
	"errors"
)

type CreateDriverRequest struct {
	Name      string `json:"name"`
	LicenseNo string `json:"license_no"`
	ContactNo string `json:"contact_no"`
}

type ListDriverRequest struct {
	Status string
}

type GetDriverRequest struct {
	ID string
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type Response struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LicenseNo string `json:"license_no"`
	ContactNo string `json:"contact_no,omitempty"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreateDriverRequest) (*Response, error)
	List(context.Context, ListDriverRequest) ([]Response, error)
	GetByID(context.Context, GetDriverRequest) (*Response, error)
	// SetStatus toggles a driver between AVAILABLE and ON_LEAVE. A driver
	// attached to an active booking stays ASSIGNED until released.
	SetStatus(context.Context, SetStatusRequest) (*Response, error)
}

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidLicense    = errors.New("invalid_license_no")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidID         = errors.New("invalid_id")
	ErrDuplicateLicense  = errors.New("license_already_registered")
	ErrNotFound          = errors.New("driver_not_found")
	ErrDriverUnavailable = errors.New("driver_unavailable")
	ErrDriverAssigned    = errors.New("driver_assigned")
)
