package models

// AlertConfig holds the dashboard alert thresholds. It is persisted in
// Redis per user; DefaultAlertConfig applies when nothing was saved yet.
type AlertConfig struct {
	SpikeZThreshold         float64  `json:"spike_z_threshold"`
	BudgetVarianceThreshold float64  `json:"budget_variance_threshold"` // percent
	ConcentrationThreshold  float64  `json:"concentration_threshold"`   // top-5 share percent
	EmailEnabled            bool     `json:"email_enabled"`
	EmailRecipients         []string `json:"email_recipients"`
}

// DefaultAlertConfig mirrors the dashboard defaults.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		SpikeZThreshold:         2,
		BudgetVarianceThreshold: 10,
		ConcentrationThreshold:  40,
		EmailEnabled:            false,
		EmailRecipients:         []string{},
	}
}

// Alert is one triggered threshold breach.
type Alert struct {
	Type     string `json:"type"`     // spike / budget / concentration
	Severity string `json:"severity"` // warning / info
	Message  string `json:"message"`
	Category string `json:"category,omitempty"` // set for budget alerts
	Count    int    `json:"count,omitempty"`    // set for spike alerts
}
