package config

import "strings"

const (
	defaultAppEnv       = "dev"
	defaultAppLogLevel  = "info"
	defaultAppHTTPAddr  = ":8787"
	defaultStoreDriver  = "memory"
	defaultStorePath    = "data/dealplans.db"
	defaultAuditLogPath = "data/promotions.db"
	defaultSeedPath     = "configs/content.json"
	defaultObjections   = "configs/objections.yaml"
)

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.App.Env) == "" {
		c.App.Env = defaultAppEnv
	}
	if strings.TrimSpace(c.App.OrgID) == "" {
		c.App.OrgID = "default"
	}
	if strings.TrimSpace(c.App.LogLevel) == "" {
		c.App.LogLevel = defaultAppLogLevel
	}
	if strings.TrimSpace(c.App.HTTPAddr) == "" {
		c.App.HTTPAddr = defaultAppHTTPAddr
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Driver == "" {
		c.Store.Driver = defaultStoreDriver
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = defaultStorePath
	}
	if strings.TrimSpace(c.Store.AuditLogPath) == "" {
		c.Store.AuditLogPath = defaultAuditLogPath
	}
	if strings.TrimSpace(c.Content.SeedPath) == "" {
		c.Content.SeedPath = defaultSeedPath
	}
	if strings.TrimSpace(c.Objections.Path) == "" {
		c.Objections.Path = defaultObjections
	}
}
