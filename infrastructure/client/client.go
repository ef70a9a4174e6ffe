package client

import (
	"errors"
	"fmt"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/domain/connection"
	"sensocket/domain/mode"
	"sensocket/infrastructure/network/connector"
	"sensocket/infrastructure/network/framing"
	"sensocket/infrastructure/network/queue"
	"sensocket/infrastructure/settings"
)

var (
	ErrEmptyPayload    = errors.New("empty payload")
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Client is one socket client. Outbound messages are sealed and framed when sent,
// so the I/O loops only move wire-ready frames.
type Client struct {
	mode      mode.Mode
	codec     application.FrameCodec
	sealer    application.Sealer
	queue     *queue.WriteQueue
	handler   application.MessageHandler
	connector *connector.Connector
	logger    logging.Logger
}

func (c *Client) Mode() mode.Mode {
	return c.mode
}

func (c *Client) Connect() {
	c.connector.Connect()
}

func (c *Client) Reconnect() {
	c.connector.Reconnect()
}

func (c *Client) Disconnect() {
	c.connector.Disconnect()
}

func (c *Client) IsConnected() bool {
	return c.connector.IsConnected()
}

func (c *Client) State() connection.State {
	return c.connector.State()
}

func (c *Client) SetAddresses(addresses []settings.Address) {
	c.connector.SetAddresses(addresses)
}

func (c *Client) Send(payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}

	sealed, sealErr := c.sealer.Seal(payload)
	if sealErr != nil {
		return fmt.Errorf("failed to seal message: %w", sealErr)
	}
	frame, encodeErr := c.codec.Encode(sealed)
	if encodeErr != nil {
		if errors.Is(encodeErr, framing.ErrFrameTooLarge) {
			return fmt.Errorf("%w: %v", ErrPayloadTooLarge, encodeErr)
		}
		return encodeErr
	}
	if pushErr := c.queue.Push(frame); pushErr != nil {
		return pushErr
	}

	c.connector.CheckConnect()
	return nil
}

// dropQueued runs whenever the connector is stopped.
func (c *Client) dropQueued() {
	if dropped := c.queue.Clear(); dropped > 0 {
		c.logger.Printf("dropped %d queued message(s)", dropped)
	}
}

// exchange is the Client as seen by the I/O loops.
type exchange struct {
	c *Client
}

func (e exchange) Pending() <-chan struct{} {
	return e.c.queue.Pending()
}

func (e exchange) Next() ([]byte, bool) {
	return e.c.queue.Pop()
}

func (e exchange) NewDecoder() application.FrameDecoder {
	return e.c.codec.NewDecoder()
}

// Receive never fails the connection on a message that does not open; it is logged and dropped.
func (e exchange) Receive(payload []byte) error {
	plaintext, err := e.c.sealer.Open(payload)
	if err != nil {
		e.c.logger.Printf("dropping inbound message: %v", err)
		return nil
	}
	if e.c.handler != nil {
		e.c.handler.HandleMessage(plaintext)
	}
	return nil
}
