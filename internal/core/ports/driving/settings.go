package driving

import "github.com/custodia-labs/drills/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetVariant updates the default calculator variant.
	SetVariant(variant domain.Variant) error

	// SetOverflowPolicy updates the integer overflow policy.
	SetOverflowPolicy(policy domain.OverflowPolicy) error

	// SetHistoryEnabled turns evaluation recording on or off.
	SetHistoryEnabled(enabled bool) error

	// SetHistoryLimit updates how many evaluations are kept.
	SetHistoryLimit(limit int) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
