package domain

// CalculatorSettings holds calculator behaviour configuration.
type CalculatorSettings struct {
	// Variant is the numeric type used when none is requested explicitly.
	Variant Variant

	// Overflow decides how integer overflow is handled.
	Overflow OverflowPolicy
}

// HistorySettings holds evaluation history configuration.
type HistorySettings struct {
	// Enabled records every calculator evaluation.
	Enabled bool

	// Limit is the maximum number of evaluations kept. Older entries are pruned.
	Limit int
}

// IsValid returns true if the history settings are usable.
func (h HistorySettings) IsValid() bool {
	return h.Limit > 0
}

// MCPSettings holds MCP server configuration.
type MCPSettings struct {
	// RateLimit is the sustained number of tool calls allowed per second.
	RateLimit float64

	// Burst is the number of tool calls allowed at once.
	Burst int
}

// IsValid returns true if the MCP settings are usable.
func (m MCPSettings) IsValid() bool {
	return m.RateLimit > 0 && m.Burst > 0
}

// AppSettings holds all persisted application settings.
type AppSettings struct {
	Calculator CalculatorSettings
	History    HistorySettings
	MCP        MCPSettings
}

// DefaultHistoryLimit is the number of evaluations kept by default.
const DefaultHistoryLimit = 500

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Calculator: CalculatorSettings{
			Variant:  VariantInt,
			Overflow: OverflowFail,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
		MCP: MCPSettings{
			RateLimit: 10,
			Burst:     20,
		},
	}
}
