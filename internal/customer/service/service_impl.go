package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Response, error) {
	kind := domain.Kind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	identityNo := strings.TrimSpace(req.IdentityNo)
	if identityNo == "" {
		return nil, domain.ErrInvalidIdentity
	}

	existing, err := s.repo.FindByIdentity(ctx, s.db, kind, identityNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := s.clock.Now()
	customer := domain.Customer{
		ID:         s.genID.Generate(),
		Kind:       kind,
		Name:       name,
		IdentityNo: identityNo,
		LicenseNo:  strings.TrimSpace(req.LicenseNo),
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	s.log.Info("customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("kind", string(customer.Kind)),
	)

	return toResponse(customer), nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		existing.Name = name
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		existing.Phone = phone
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		existing.Email = email
	}
	existing.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return nil, err
	}

	return toResponse(*existing), nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) ([]domain.Response, error) {
	filter := domain.ListCustomerFilter{
		Name: strings.TrimSpace(req.Name),
	}
	if kind := strings.TrimSpace(req.Kind); kind != "" {
		k := domain.Kind(strings.ToUpper(kind))
		if !k.Valid() {
			return nil, domain.ErrInvalidKind
		}
		filter.Kind = k
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, *toResponse(item))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (*domain.Response, error) {
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

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func toResponse(c domain.Customer) *domain.Response {
	return &domain.Response{
		ID:         c.ID.String(),
		Kind:       c.Kind,
		Name:       c.Name,
		IdentityNo: c.IdentityNo,
		LicenseNo:  c.LicenseNo,
		Phone:      c.Phone,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}
