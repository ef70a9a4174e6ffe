package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/domain/mode"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"
	"sensocket/infrastructure/settings"
	"sensocket/infrastructure/telemetry/trafficstats"
	"sensocket/presentation/mode_selection"
	"sync"
	"time"
)

var ErrAllAddressesFailed = errors.New("every configured address failed")

// Runner attaches exactly one socket client for the selected mode and keeps it
// running until ctx is cancelled.
type Runner struct {
	appMode mode_selection.AppMode
	deps    AppDependencies
	in      io.Reader
	out     *syncWriter
}

func NewRunner(appMode mode_selection.AppMode, deps AppDependencies, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		appMode: appMode,
		deps:    deps,
		in:      in,
		out:     &syncWriter{w: out},
	}
}

func (r *Runner) Run(ctx context.Context) error {
	m, modeErr := r.appMode.Mode()
	if modeErr != nil {
		return modeErr
	}
	if initErr := r.deps.Initialize(m); initErr != nil {
		return initErr
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conf := r.deps.Configuration()
	logger := r.deps.Logger()
	listener := newConnectListener(logger)

	c, createErr := r.deps.ClientFactory().Create(ctx, m, listener, &printHandler{out: r.out})
	if createErr != nil {
		return fmt.Errorf("failed to create %s client: %w", m, createErr)
	}

	stats := r.deps.Stats()
	if stats != nil {
		go stats.Start(ctx)
	}
	r.watchConfiguration(ctx, m, c, conf, logger)
	go r.readInput(ctx, c, logger)

	logger.Printf("starting %s client", m)
	c.Connect()

	for {
		select {
		case <-ctx.Done():
			c.Disconnect()
			if stats != nil {
				_, _ = fmt.Fprintln(r.out, trafficstats.Summary(stats.Snapshot()))
			}
			return nil
		case <-listener.failed:
			if !conf.Reconnect.Enabled {
				c.Disconnect()
				return fmt.Errorf("%s client: %w", m, ErrAllAddressesFailed)
			}
			interval := conf.ReconnectInterval()
			logger.Printf("every address failed, reconnecting in %s", interval)
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
			case <-timer.C:
				c.Reconnect()
			}
		}
	}
}

func (r *Runner) watchConfiguration(
	ctx context.Context,
	m mode.Mode,
	c application.Client,
	conf clientConfiguration.Configuration,
	logger logging.Logger,
) {
	manager := r.deps.ConfigurationManager()
	if manager == nil {
		return
	}
	s, err := conf.SettingsFor(m)
	if err != nil {
		return
	}
	watcher := clientConfiguration.NewWatcher(manager, m, s.Addresses, 0, func(addresses []settings.Address) {
		c.SetAddresses(addresses)
		c.Reconnect()
	}, logger)
	go watcher.Watch(ctx)
}

// readInput sends every non-empty line. EOF only stops reading; the client keeps receiving.
func (r *Runner) readInput(ctx context.Context, c application.Client, logger logging.Logger) {
	err := scanLines(r.in, settings.MaxMessageLengthBytes,
		func(line []byte) {
			if ctx.Err() != nil {
				return
			}
			if sendErr := c.Send(line); sendErr != nil {
				logger.Printf("failed to send message: %v", sendErr)
			}
		},
		func(length int) {
			logger.Printf("skipped a %d byte input line: messages are limited to %d bytes", length, settings.MaxMessageLengthBytes)
		},
	)
	switch {
	case ctx.Err() != nil:
	case err != nil:
		logger.Printf("stopped reading input: %v", err)
	default:
		logger.Printf("input closed, still receiving")
	}
}

type connectListener struct {
	failed chan struct{}
	logger logging.Logger
}

func newConnectListener(logger logging.Logger) *connectListener {
	return &connectListener{
		failed: make(chan struct{}, 1),
		logger: logger,
	}
}

func (l *connectListener) OnConnectionSuccess() {
	l.logger.Printf("connected")
}

func (l *connectListener) OnConnectionFailed() {
	select {
	case l.failed <- struct{}{}:
	default:
	}
}

type printHandler struct {
	out io.Writer
}

func (h *printHandler) HandleMessage(payload []byte) {
	_, _ = fmt.Fprintf(h.out, "%s\n", payload)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
