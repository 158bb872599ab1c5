package domain

import (
	"context"
	"errors"
)

type CreateVehicleRequest struct {
	PlateNo      string `json:"plate_no"`
	Model        string `json:"model"`
	RatePlanCode string `json:"rate_plan_code"`
}

type ListVehicleRequest struct {
	Status string
}

type GetVehicleRequest struct {
	ID string
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type Response struct {
	ID           string `json:"id"`
	PlateNo      string `json:"plate_no"`
	Model        string `json:"model"`
	RatePlanID   string `json:"rate_plan_id"`
	RatePlanCode string `json:"rate_plan_code,omitempty"`
	Status       Status `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreateVehicleRequest) (*Response, error)
	List(context.Context, ListVehicleRequest) ([]Response, error)
	GetByID(context.Context, GetVehicleRequest) (*Response, error)
	// SetStatus is the administrative override between AVAILABLE and
	// UNDER_MAINTENANCE. A vehicle attached to an active booking stays
	// RESERVED until the booking completes or cancels.
	SetStatus(context.Context, SetStatusRequest) (*Response, error)
}

var (
	ErrInvalidPlate       = errors.New("invalid_plate_no")
	ErrInvalidModel       = errors.New("invalid_model")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidID          = errors.New("invalid_id")
	ErrDuplicatePlate     = errors.New("plate_already_registered")
	ErrNotFound           = errors.New("vehicle_not_found")
	ErrVehicleUnavailable = errors.New("vehicle_unavailable")
	ErrVehicleReserved    = errors.New("vehicle_reserved")
)
