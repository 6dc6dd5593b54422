package main

import (
	"strings"
	"sync"

	"logbay/internal/client"
	"logbay/internal/config"
)

type commandContext struct {
	apiFlag    *string
	tokenFlag  *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(apiFlag, tokenFlag, configFlag *string) *commandContext {
	return &commandContext{
		apiFlag:    apiFlag,
		tokenFlag:  tokenFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newClient resolves the daemon address and token from flags first, then the
// configuration file.
func (c *commandContext) newClient() (*client.Client, error) {
	address := strings.TrimSpace(*c.apiFlag)
	token := strings.TrimSpace(*c.tokenFlag)

	if address == "" || token == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			if address == "" {
				return nil, err
			}
		} else {
			if address == "" {
				address = cfg.Server.Bind
			}
			if token == "" {
				token = cfg.Server.APIToken
			}
		}
	}

	return client.New(address, token)
}

func (c *commandContext) kind(system bool) client.Kind {
	if system {
		return client.KindSystem
	}
	return client.KindService
}
