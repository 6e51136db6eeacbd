package config

import "strings"

// Provider exposes named application settings and connection strings to
// layers that should not depend on the full configuration shape
type Provider struct {
	cfg *Config
}

// NewProvider creates a Provider over loaded configuration
func NewProvider(cfg *Config) *Provider {
	return &Provider{cfg: cfg}
}

// GetAppSetting returns the named application setting, or the empty string
// when the setting is absent. Setting names are case-insensitive.
func (p *Provider) GetAppSetting(name string) string {
	return p.cfg.Settings[strings.ToLower(name)]
}

// GetConnectionString returns the connection string for the named database.
// Only the primary store is configured; unknown names resolve to it as well.
func (p *Provider) GetConnectionString(name string) string {
	return p.cfg.Database.DSN()
}
