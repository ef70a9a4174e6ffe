package client

import (
	"context"
	"fmt"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/domain/mode"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"
	"sensocket/infrastructure/cryptography/psk"
	"sensocket/infrastructure/network/connector"
	"sensocket/infrastructure/network/framing"
	"sensocket/infrastructure/network/ioloop"
	"sensocket/infrastructure/network/processor"
	"sensocket/infrastructure/network/queue"
	"sensocket/infrastructure/network/tcp"
	"sensocket/infrastructure/network/udp"
	"sensocket/infrastructure/settings"
	"sensocket/infrastructure/telemetry/trafficstats"

	"golang.org/x/time/rate"
)

type Factory struct {
	conf   clientConfiguration.Configuration
	stats  *trafficstats.Collector
	logger logging.Logger
}

func NewFactory(
	conf clientConfiguration.Configuration,
	stats *trafficstats.Collector,
	logger logging.Logger,
) application.ClientFactory {
	return &Factory{
		conf:   conf,
		stats:  stats,
		logger: logger,
	}
}

// Create wires a client for m: dialer by protocol, I/O loop by blocking model.
// Unknown modes are rejected rather than mapped to a default client.
func (f *Factory) Create(
	ctx context.Context,
	m mode.Mode,
	listener application.ConnectListener,
	handler application.MessageHandler,
) (application.Client, error) {
	if !m.IsValid() {
		return nil, mode.NewInvalidModeProvided(m.String())
	}
	if confErr := f.conf.Validate(); confErr != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", confErr)
	}

	s, settingsErr := f.conf.SettingsFor(m)
	if settingsErr != nil {
		return nil, settingsErr
	}
	if validateErr := s.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%s settings: %w", m, validateErr)
	}

	dialer, dialerErr := f.dialer(s)
	if dialerErr != nil {
		return nil, dialerErr
	}
	codec, codecErr := framing.NewCodec(s.Framing.Resolve(s.Protocol), 0)
	if codecErr != nil {
		return nil, codecErr
	}
	sealer, sealerErr := f.sealer()
	if sealerErr != nil {
		return nil, sealerErr
	}
	loops, loopsErr := f.loops(m)
	if loopsErr != nil {
		return nil, loopsErr
	}

	c := &Client{
		mode:    m,
		codec:   codec,
		sealer:  sealer,
		queue:   queue.NewWriteQueue(f.conf.WriteQueueSize),
		handler: handler,
		logger:  f.logger,
	}
	processors := processor.NewFactory(dialer, loops, exchange{c: c}, s.DialTimeout(), f.logger)
	c.connector = connector.NewConnector(ctx, processors, listener, f.limiter(), c.dropQueued, f.logger)
	c.connector.SetAddresses(s.Addresses)

	return c, nil
}

func (f *Factory) dialer(s settings.Settings) (application.Dialer, error) {
	switch s.Protocol {
	case settings.TCP:
		return tcp.NewDialer(s)
	case settings.UDP:
		return udp.NewDialer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", settings.ErrInvalidProtocol, s.Protocol)
	}
}

func (f *Factory) sealer() (application.Sealer, error) {
	if !f.conf.Encryption.Enabled {
		return psk.NewPlain(), nil
	}
	return psk.NewSealer(f.conf.Encryption.Key)
}

func (f *Factory) loops(m mode.Mode) (application.IOLoopFactory, error) {
	if m.Blocking() {
		return ioloop.NewBIOFactory(0, f.stats), nil
	}
	writeTimeout, err := ioloop.NewDeadline(f.conf.WriteTimeout())
	if err != nil {
		return nil, fmt.Errorf("write timeout: %w", err)
	}
	return ioloop.NewNIOFactory(f.conf.PollInterval(), writeTimeout, f.stats), nil
}

// limiter paces dials; nil when pacing is off.
func (f *Factory) limiter() *rate.Limiter {
	interval := f.conf.ReconnectInterval()
	if interval <= 0 {
		return nil
	}
	burst := f.conf.Reconnect.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(interval), burst)
}
