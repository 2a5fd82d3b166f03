package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters (got %d)", len(c.Auth.TokenSecret))
	}

	if c.Auth.TokenTTL < 0 {
		return fmt.Errorf("auth.token_ttl must be >= 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}

	if err := c.Leeloo.validate(); err != nil {
		return fmt.Errorf("leeloo: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("ratelimit.requests must be > 0 (got %d)", c.RateLimit.Requests)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("ratelimit.window must be > 0 (got %v)", c.RateLimit.Window)
		}
	}

	if c.Journal.RetentionDays < 0 {
		return fmt.Errorf("journal.retention_days must be >= 0 (got %d)", c.Journal.RetentionDays)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	return nil
}

func (l *LeelooConfig) validate() error {
	l.InstallURL = strings.TrimRight(strings.TrimSpace(l.InstallURL), "/")
	if l.InstallURL != "" {
		u, err := url.Parse(l.InstallURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("install_url %q is not an absolute URL", l.InstallURL)
		}
	}
	if l.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", l.CacheTTL)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	if l.File != "" && l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 when file is set (got %d)", l.MaxSizeMB)
	}
	return nil
}
