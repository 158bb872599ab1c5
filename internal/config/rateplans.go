package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// RatePlanSpec describes one pricing tier of the rental catalog.
// Amounts are in cents; TaxRatePercent is a whole percentage (0-100).
type RatePlanSpec struct {
	Code            string `mapstructure:"code"`
	Name            string `mapstructure:"name"`
	DailyFeeCents   int64  `mapstructure:"dailyFeeCents"`
	FreeKmPerDay    int64  `mapstructure:"freeKmPerDay"`
	OverageFeeCents int64  `mapstructure:"overageFeeCents"`
	TaxRatePercent  int64  `mapstructure:"taxRatePercent"`
}

// DefaultRatePlans returns the built-in catalog used when no rateplans.yml
// override is present.
func DefaultRatePlans() []RatePlanSpec {
	return []RatePlanSpec{
		{Code: "compact-petrol", Name: "Compact Petrol", DailyFeeCents: 500_000, FreeKmPerDay: 100, OverageFeeCents: 5_000, TaxRatePercent: 10},
		{Code: "hybrid-midsize", Name: "Hybrid Midsize", DailyFeeCents: 750_000, FreeKmPerDay: 150, OverageFeeCents: 6_000, TaxRatePercent: 12},
		{Code: "electric-premium", Name: "Electric Premium", DailyFeeCents: 1_000_000, FreeKmPerDay: 200, OverageFeeCents: 4_000, TaxRatePercent: 8},
		{Code: "luxury-suv", Name: "Luxury SUV", DailyFeeCents: 1_500_000, FreeKmPerDay: 250, OverageFeeCents: 7_500, TaxRatePercent: 15},
	}
}

// RatePlanHolder exposes the current catalog and hot-reloads it when the
// backing file changes. The catalog itself is immutable; a reload swaps the
// whole slice.
type RatePlanHolder struct {
	current atomic.Value // holds []RatePlanSpec
}

func NewRatePlanHolder(cfg Config) (*RatePlanHolder, error) {
	v := viper.New()

	v.SetConfigName("rateplans")
	v.SetConfigType("yml")
	if cfg.RatePlanFile != "" {
		v.SetConfigFile(cfg.RatePlanFile)
	}
	v.AddConfigPath("/etc/ecoride")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ECORIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	holder := &RatePlanHolder{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfg.RatePlanFile != "" {
			return nil, err
		}
		holder.current.Store(DefaultRatePlans())
		return holder, nil
	}

	var plans []RatePlanSpec
	if err := v.UnmarshalKey("ratePlans", &plans); err != nil {
		return nil, err
	}
	if err := validateRatePlans(plans); err != nil {
		return nil, err
	}
	holder.current.Store(plans)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated []RatePlanSpec
		if err := v.UnmarshalKey("ratePlans", &updated); err != nil {
			log.Printf("[rateplan-config] reload failed: %v", err)
			return
		}
		if err := validateRatePlans(updated); err != nil {
			log.Printf("[rateplan-config] invalid catalog ignored: %v", err)
			return
		}
		holder.current.Store(updated)
	})

	return holder, nil
}

func (h *RatePlanHolder) Current() []RatePlanSpec {
	plans, _ := h.current.Load().([]RatePlanSpec)
	return plans
}

func validateRatePlans(plans []RatePlanSpec) error {
	if len(plans) == 0 {
		return errors.New("rate plan catalog is empty")
	}
	seen := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		code := strings.TrimSpace(p.Code)
		if code == "" {
			return errors.New("rate plan code is required")
		}
		if _, dup := seen[code]; dup {
			return errors.New("duplicate rate plan code: " + code)
		}
		seen[code] = struct{}{}
		if p.DailyFeeCents < 0 || p.FreeKmPerDay < 0 || p.OverageFeeCents < 0 {
			return errors.New("rate plan amounts must not be negative: " + code)
		}
		if p.TaxRatePercent < 0 || p.TaxRatePercent > 100 {
			return errors.New("rate plan tax rate must be 0-100: " + code)
		}
	}
	return nil
}
