package shutdown

import (
	"context"
	"sensocket/application/logging"
	palSignal "sensocket/infrastructure/PAL/signal"
	"sensocket/presentation/signals"
	"sync"
)

type Handler struct {
	// appCtx is cancelled either by a signal or by the application itself.
	appCtx       context.Context
	appCtxCancel context.CancelFunc
	once         sync.Once
	// signalProvider is the shutdown signal set for the current platform.
	signalProvider palSignal.Provider
	notifier       signals.Notifier
	logger         logging.Logger
}

func NewHandler(
	appCtx context.Context,
	appCtxCancel context.CancelFunc,
	signalProvider palSignal.Provider,
	notifier signals.Notifier,
	logger logging.Logger,
) signals.Handler {
	return &Handler{
		appCtx:         appCtx,
		appCtxCancel:   appCtxCancel,
		signalProvider: signalProvider,
		notifier:       notifier,
		logger:         logger,
	}
}

func (h *Handler) Handle() {
	h.once.Do(func() {
		h.listenAndHandleShutdownSignals()
	})
}

func (h *Handler) listenAndHandleShutdownSignals() {
	signalChan, unsubscribe := h.notifier.Subscribe(h.signalProvider.ShutdownSignals()...)
	go func() {
		defer unsubscribe()
		select {
		case sig := <-signalChan:
			h.logger.Printf("%s received, disconnecting", sig)
			h.appCtxCancel()
		case <-h.appCtx.Done():
		}
	}()
}
