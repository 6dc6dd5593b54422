package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeServer(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeTail()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeServer() error {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}

	if value, ok := os.LookupEnv("LOGBAY_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.Server.BaseURL = value
	}
	c.Server.BaseURL = strings.TrimSpace(c.Server.BaseURL)
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaultBaseURL
	}

	if value, ok := os.LookupEnv("LOGBAY_BASE_PATH"); ok && strings.TrimSpace(value) != "" {
		c.Server.BasePath = value
	}
	c.Server.BasePath = strings.TrimSpace(c.Server.BasePath)
	if c.Server.BasePath == "" {
		c.Server.BasePath = defaultBasePath
	}

	if value, ok := os.LookupEnv("LOGBAY_SERVICE_ID"); ok && strings.TrimSpace(value) != "" {
		c.Server.ServiceID = value
	}
	c.Server.ServiceID = strings.TrimSpace(c.Server.ServiceID)

	c.Server.AuthMode = strings.ToLower(strings.TrimSpace(c.Server.AuthMode))
	if c.Server.AuthMode == "" {
		c.Server.AuthMode = defaultAuthMode
	}
	c.Server.APIToken = strings.TrimSpace(c.Server.APIToken)
	c.Server.JWTSecret = strings.TrimSpace(c.Server.JWTSecret)
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	if value, ok := os.LookupEnv("LOGBAY_SERVICES_FILE"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.ServicesFile = value
	}
	if strings.TrimSpace(c.Catalog.ServicesFile) == "" {
		c.Catalog.ServicesFile = defaultServicesFile
	}
	if c.Catalog.ServicesFile, err = expandPath(c.Catalog.ServicesFile); err != nil {
		return fmt.Errorf("catalog.services_file: %w", err)
	}

	if strings.TrimSpace(c.Catalog.ServiceLogRoot) == "" {
		c.Catalog.ServiceLogRoot = defaultServiceLogRoot
	}
	if c.Catalog.ServiceLogRoot, err = expandPath(c.Catalog.ServiceLogRoot); err != nil {
		return fmt.Errorf("catalog.service_log_root: %w", err)
	}
	return nil
}

func (c *Config) normalizeTail() {
	if c.Tail.MaxLines == 0 {
		c.Tail.MaxLines = defaultMaxLines
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
