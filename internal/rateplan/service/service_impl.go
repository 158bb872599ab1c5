package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/config"
	"github.com/ecoride/ecoride/internal/rateplan/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Plans *config.RatePlanHolder
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	plans *config.RatePlanHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("rateplan.service"),
		genID: p.GenID,
		repo:  p.Repo,
		plans: p.Plans,
	}
}

// SyncCatalog implements domain.Service.
func (s *Service) SyncCatalog(ctx context.Context) error {
	now := time.Now().UTC()
	for _, spec := range s.plans.Current() {
		plan := &domain.RatePlan{
			ID:              s.genID.Generate(),
			Code:            spec.Code,
			Name:            spec.Name,
			DailyFeeCents:   spec.DailyFeeCents,
			FreeKmPerDay:    spec.FreeKmPerDay,
			OverageFeeCents: spec.OverageFeeCents,
			TaxRatePercent:  spec.TaxRatePercent,
			CreatedAt:       now,
		}
		if err := s.repo.Upsert(ctx, s.db, plan); err != nil {
			return err
		}
	}
	s.log.Info("rate plan catalog synced", zap.Int("plans", len(s.plans.Current())))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Response, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}

	plan, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return toResponse(plan), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	planID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || planID == 0 {
		return nil, domain.ErrInvalidID
	}

	plan, err := s.repo.FindByID(ctx, s.db, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return toResponse(plan), nil
}

func toResponse(p *domain.RatePlan) *domain.Response {
	return &domain.Response{
		ID:              p.ID.String(),
		Code:            p.Code,
		Name:            p.Name,
		DailyFeeCents:   p.DailyFeeCents,
		FreeKmPerDay:    p.FreeKmPerDay,
		OverageFeeCents: p.OverageFeeCents,
		TaxRatePercent:  p.TaxRatePercent,
	}
}
