package config

// Config is the top-level configuration for sigdesk.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Store      StoreConfig      `mapstructure:"store"`
	Content    ContentConfig    `mapstructure:"content"`
	Objections ObjectionsConfig `mapstructure:"objections"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	OrgID    string `mapstructure:"org_id"`
	LogLevel string `mapstructure:"log_level"`
	HTTPAddr string `mapstructure:"http_addr"`
	LogPath  string `mapstructure:"log_path"`
}

// StoreConfig selects the deal plan backing store. Driver "memory" keeps
// plans process-local; "sqlite" persists them under Path.
type StoreConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	AuditLogPath string `mapstructure:"audit_log_path"`
}

// ContentConfig points at the feed seed file.
type ContentConfig struct {
	SeedPath string `mapstructure:"seed_path"`
	Watch    bool   `mapstructure:"watch"`
}

type ObjectionsConfig struct {
	Path string `mapstructure:"path"`
}
