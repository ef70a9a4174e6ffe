package application

import (
	"context"
	"sensocket/domain/connection"
	"sensocket/domain/mode"
	"sensocket/infrastructure/settings"
)

// MessageHandler receives every inbound message after framing and unsealing.
type MessageHandler interface {
	HandleMessage(payload []byte)
}

// Client is one socket client of a given mode.
type Client interface {
	Mode() mode.Mode
	Connect()
	Reconnect()
	Disconnect()
	IsConnected() bool
	State() connection.State
	// Send queues payload and makes sure a connection is (being) established.
	Send(payload []byte) error
	// SetAddresses replaces the address list; it takes effect on the next connect.
	SetAddresses(addresses []settings.Address)
}

type ClientFactory interface {
	Create(ctx context.Context, m mode.Mode, listener ConnectListener, handler MessageHandler) (Client, error)
}
