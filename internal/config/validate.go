package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. The daemon refuses to start
// on any validation failure rather than serve with a partial setup.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateTail(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}

	base, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("server.base_url: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return fmt.Errorf("server.base_url must be an absolute URL, got %q", c.Server.BaseURL)
	}

	switch c.Server.AuthMode {
	case "none":
	case "token":
		if c.Server.APIToken == "" {
			return errors.New("server.api_token is required when auth_mode is \"token\"")
		}
	case "jwt":
		if c.Server.JWTSecret == "" {
			return errors.New("server.jwt_secret is required when auth_mode is \"jwt\"")
		}
	default:
		return fmt.Errorf("server.auth_mode must be one of none, token, jwt; got %q", c.Server.AuthMode)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.ServicesFile == "" {
		return errors.New("catalog.services_file must be set")
	}
	if c.Catalog.ServiceLogRoot == "" {
		return errors.New("catalog.service_log_root must be set")
	}
	return nil
}

func (c *Config) validateTail() error {
	if c.Tail.MaxLines <= 0 {
		return errors.New("tail.max_lines must be greater than zero")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
