package client

import (
	"fmt"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/domain/mode"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"
	clientFactory "sensocket/infrastructure/client"
	"sensocket/infrastructure/settings"
	"sensocket/infrastructure/telemetry/trafficstats"
	"time"
)

type AppDependencies interface {
	Initialize(m mode.Mode) error
	Configuration() clientConfiguration.Configuration
	ClientFactory() application.ClientFactory
	Stats() *trafficstats.Collector
	// ConfigurationManager is nil when the address list came from the command line
	// and the configuration file must not be watched.
	ConfigurationManager() clientConfiguration.ConfigurationManager
	Logger() logging.Logger
}

type Dependencies struct {
	conf       clientConfiguration.Configuration
	factory    application.ClientFactory
	stats      *trafficstats.Collector
	cfgManager clientConfiguration.ConfigurationManager
	addresses  []string
	logger     logging.Logger
}

// NewDependencies builds client dependencies. Non-empty addresses replace the
// configured address list of the selected mode's protocol.
func NewDependencies(
	cfgManager clientConfiguration.ConfigurationManager,
	addresses []string,
	logger logging.Logger,
) AppDependencies {
	return &Dependencies{
		cfgManager: cfgManager,
		addresses:  addresses,
		logger:     logger,
	}
}

func (c *Dependencies) Initialize(m mode.Mode) error {
	conf, err := c.cfgManager.Configuration()
	if err != nil {
		return fmt.Errorf("failed to read client configuration: %w", err)
	}

	if len(c.addresses) > 0 {
		overrides := make([]settings.Address, 0, len(c.addresses))
		for _, raw := range c.addresses {
			address, parseErr := settings.ParseAddress(raw)
			if parseErr != nil {
				return fmt.Errorf("invalid --address %q: %w", raw, parseErr)
			}
			overrides = append(overrides, address)
		}
		if setErr := conf.SetAddresses(m, overrides); setErr != nil {
			return setErr
		}
	}

	c.conf = *conf
	c.stats = trafficstats.NewCollector(time.Second, 0.3)
	c.factory = clientFactory.NewFactory(c.conf, c.stats, c.logger)
	return nil
}

func (c *Dependencies) Configuration() clientConfiguration.Configuration {
	return c.conf
}

func (c *Dependencies) ClientFactory() application.ClientFactory {
	return c.factory
}

func (c *Dependencies) Stats() *trafficstats.Collector {
	return c.stats
}

func (c *Dependencies) ConfigurationManager() clientConfiguration.ConfigurationManager {
	if len(c.addresses) > 0 {
		return nil
	}
	return c.cfgManager
}

func (c *Dependencies) Logger() logging.Logger {
	return c.logger
}
