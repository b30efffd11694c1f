package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("store.driver must be \"memory\" or \"sqlite\", got %q", c.Store.Driver)
	}
	if c.Store.Driver == "sqlite" && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path is required when store.driver is sqlite")
	}
	return nil
}
