package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	"github.com/ecoride/ecoride/internal/vehicle/domain"
	"github.com/ecoride/ecoride/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	RatePlan rateplandomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	ratePlan rateplandomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("vehicle.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		ratePlan: p.RatePlan,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateVehicleRequest) (*domain.Response, error) {
	plateNo := strings.ToUpper(strings.TrimSpace(req.PlateNo))
	if plateNo == "" {
		return nil, domain.ErrInvalidPlate
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		return nil, domain.ErrInvalidModel
	}

	plan, err := s.ratePlan.GetByCode(ctx, req.RatePlanCode)
	if err != nil {
		return nil, err
	}

	planID, err := snowflake.ParseString(plan.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByPlate(ctx, s.db, plateNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicatePlate
	}

	now := s.clock.Now()
	vehicle := domain.Vehicle{
		ID:         s.genID.Generate(),
		PlateNo:    plateNo,
		Model:      model,
		RatePlanID: planID,
		Status:     domain.StatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &vehicle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicatePlate
		}
		return nil, err
	}

	s.log.Info("vehicle registered",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("plate_no", vehicle.PlateNo),
		zap.String("rate_plan", plan.Code),
	)

	resp := toResponse(vehicle)
	resp.RatePlanCode = plan.Code
	return resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListVehicleRequest) ([]domain.Response, error) {
	var status domain.Status
	if v := strings.TrimSpace(req.Status); v != "" {
		status = domain.Status(strings.ToUpper(v))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	items, err := s.repo.List(ctx, s.db, status)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, *toResponse(item))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetVehicleRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return toResponse(*item), nil
}

func (s *Service) SetStatus(ctx context.Context, req domain.SetStatusRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	target := domain.Status(strings.ToUpper(strings.TrimSpace(req.Status)))
	if target != domain.StatusAvailable && target != domain.StatusUnderMaintenance {
		return nil, domain.ErrInvalidStatus
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status == domain.StatusReserved {
		return nil, domain.ErrVehicleReserved
	}

	if item.Status != target {
		now := s.clock.Now()
		ok, err := s.repo.UpdateStatusIf(ctx, s.db, id, item.Status, target, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrVehicleReserved
		}
		item.Status = target
		item.UpdatedAt = now
	}

	return toResponse(*item), nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func toResponse(v domain.Vehicle) *domain.Response {
	return &domain.Response{
		ID:         v.ID.String(),
		PlateNo:    v.PlateNo,
		Model:      v.Model,
		RatePlanID: v.RatePlanID.String(),
		Status:     v.Status,
		CreatedAt:  v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  v.UpdatedAt.Format(time.RFC3339),
	}
}
