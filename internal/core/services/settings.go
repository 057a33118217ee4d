package services

import (
	"fmt"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCalcVariant    = "calculator.variant"
	keyCalcOverflow   = "calculator.overflow"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
	keyMCPRateLimit   = "mcp.rate_limit"
	keyMCPBurst       = "mcp.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Calculator: domain.CalculatorSettings{
			Variant:  s.getVariant(defaults.Calculator.Variant),
			Overflow: s.getOverflowPolicy(defaults.Calculator.Overflow),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getPositiveInt(keyHistoryLimit, defaults.History.Limit),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getPositiveFloat(keyMCPRateLimit, defaults.MCP.RateLimit),
			Burst:     s.getPositiveInt(keyMCPBurst, defaults.MCP.Burst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyCalcVariant, settings.Calculator.Variant.String()); err != nil {
		return fmt.Errorf("save calculator variant: %w", err)
	}
	if err := s.configStore.Set(keyCalcOverflow, settings.Calculator.Overflow.String()); err != nil {
		return fmt.Errorf("save calculator overflow: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	if err := s.configStore.Set(keyMCPRateLimit, settings.MCP.RateLimit); err != nil {
		return fmt.Errorf("save mcp rate_limit: %w", err)
	}
	if err := s.configStore.Set(keyMCPBurst, settings.MCP.Burst); err != nil {
		return fmt.Errorf("save mcp burst: %w", err)
	}
	return nil
}

// SetVariant updates the default calculator variant.
func (s *SettingsService) SetVariant(variant domain.Variant) error {
	if !variant.IsValid() {
		return fmt.Errorf("%w: calculator variant %q", domain.ErrInvalidInput, variant)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Calculator.Variant = variant
	})
}

// SetOverflowPolicy updates the integer overflow policy.
func (s *SettingsService) SetOverflowPolicy(policy domain.OverflowPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("%w: overflow policy %q", domain.ErrInvalidInput, policy)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Calculator.Overflow = policy
	})
}

// SetHistoryEnabled turns evaluation recording on or off.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.History.Enabled = enabled
	})
}

// SetHistoryLimit updates how many evaluations are kept.
func (s *SettingsService) SetHistoryLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: history limit must be positive, got %d", domain.ErrInvalidInput, limit)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.History.Limit = limit
	})
}

// Validate checks the raw stored values, reporting entries that Get would
// silently replace with defaults.
func (s *SettingsService) Validate() error {
	if val := s.configStore.GetString(keyCalcVariant); val != "" && !domain.Variant(val).IsValid() {
		return fmt.Errorf("invalid calculator variant: %s", val)
	}
	if val := s.configStore.GetString(keyCalcOverflow); val != "" && !domain.OverflowPolicy(val).IsValid() {
		return fmt.Errorf("invalid overflow policy: %s", val)
	}
	if _, ok := s.configStore.Get(keyHistoryLimit); ok && s.configStore.GetInt(keyHistoryLimit) <= 0 {
		return fmt.Errorf("invalid history limit: must be a positive integer")
	}
	if _, ok := s.configStore.Get(keyMCPRateLimit); ok && s.configStore.GetFloat(keyMCPRateLimit) <= 0 {
		return fmt.Errorf("invalid mcp rate limit: must be positive")
	}
	if _, ok := s.configStore.Get(keyMCPBurst); ok && s.configStore.GetInt(keyMCPBurst) <= 0 {
		return fmt.Errorf("invalid mcp burst: must be a positive integer")
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) update(apply func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getVariant(defaultVal domain.Variant) domain.Variant {
	variant := domain.Variant(s.configStore.GetString(keyCalcVariant))
	if !variant.IsValid() {
		return defaultVal
	}
	return variant
}

func (s *SettingsService) getOverflowPolicy(defaultVal domain.OverflowPolicy) domain.OverflowPolicy {
	policy := domain.OverflowPolicy(s.configStore.GetString(keyCalcOverflow))
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}
