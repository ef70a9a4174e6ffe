package processor

import (
	"context"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/infrastructure/settings"
	"time"
)

type Factory struct {
	dialer      application.Dialer
	loops       application.IOLoopFactory
	exchange    application.Exchange
	dialTimeout time.Duration
	logger      logging.Logger
}

func NewFactory(
	dialer application.Dialer,
	loops application.IOLoopFactory,
	exchange application.Exchange,
	dialTimeout time.Duration,
	logger logging.Logger,
) application.ProcessorFactory {
	if dialTimeout <= 0 {
		dialTimeout = settings.DefaultDialTimeout
	}
	return &Factory{
		dialer:      dialer,
		loops:       loops,
		exchange:    exchange,
		dialTimeout: dialTimeout,
		logger:      logger,
	}
}

func (f *Factory) NewProcessor(
	ctx context.Context,
	address settings.Address,
	delay time.Duration,
	listener application.ProcessorListener,
) application.Processor {
	return NewProcessor(
		ctx,
		address,
		delay,
		f.dialTimeout,
		f.dialer,
		f.loops.NewLoop(),
		f.exchange,
		listener,
		f.logger,
	)
}
