package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/driver/domain"
	"github.com/ecoride/ecoride/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("driver.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDriverRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	licenseNo := strings.ToUpper(strings.TrimSpace(req.LicenseNo))
	if licenseNo == "" {
		return nil, domain.ErrInvalidLicense
	}

	existing, err := s.repo.FindByLicense(ctx, s.db, licenseNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateLicense
	}

	now := s.clock.Now()
	driver := domain.Driver{
		ID:        s.genID.Generate(),
		Name:      name,
		LicenseNo: licenseNo,
		ContactNo: strings.TrimSpace(req.ContactNo),
		Status:    domain.StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &driver); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateLicense
		}
		return nil, err
	}

	s.log.Info("driver registered",
		zap.String("driver_id", driver.ID.String()),
		zap.String("license_no", driver.LicenseNo),
	)

	return toResponse(driver), nil
}

func (s *Service) List(ctx context.Context, req domain.ListDriverRequest) ([]domain.Response, error) {
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

func (s *Service) GetByID(ctx context.Context, req domain.GetDriverRequest) (*domain.Response, error) {
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
	if target != domain.StatusAvailable && target != domain.StatusOnLeave {
		return nil, domain.ErrInvalidStatus
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status == domain.StatusAssigned {
		return nil, domain.ErrDriverAssigned
	}

	if item.Status != target {
		now := s.clock.Now()
		ok, err := s.repo.UpdateStatusIf(ctx, s.db, id, item.Status, target, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrDriverAssigned
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

func toResponse(d domain.Driver) *domain.Response {
	return &domain.Response{
		ID:        d.ID.String(),
		Name:      d.Name,
		LicenseNo: d.LicenseNo,
		ContactNo: d.ContactNo,
		Status:    d.Status,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
