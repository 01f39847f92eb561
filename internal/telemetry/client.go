package telemetry

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds telemetry client configuration.
type Config struct {
	Host    string
	Port    int
	Timeout time.Duration
	AppName string
}

// ConnectionState represents the client's connection lifecycle.
type ConnectionState int32

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
)

// Client manages a TCP connection to a telemetry feed.
type Client struct {
	config Config
	conn   net.Conn
	state  atomic.Int32
	mu     sync.Mutex
	nextID atomic.Uint32
}

// NewClient creates a new telemetry client.
func NewClient(cfg Config) *Client {
	c := &Client{config: cfg}
	c.state.Store(int32(StateDisconnected))
	return c
}

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// Connect establishes a TCP connection and sends the HELLO message.
func (c *Client) Connect(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
	dialer := net.Dialer{Timeout: c.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("telemetry dial: %w", err)
	}
	return c.connectWithConn(ctx, conn)
}

// connectWithConn performs the handshake on an existing net.Conn. Separated
// from Connect to allow testing with net.Pipe().
func (c *Client) connectWithConn(ctx context.Context, conn net.Conn) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("telemetry connect: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Store(int32(StateConnecting))
	c.conn = conn

	// HELLO payload: null-terminated app name
	appNameBytes := append([]byte(c.config.AppName), 0)
	if err := c.sendMessageLocked(MsgHello, appNameBytes); err != nil {
		c.state.Store(int32(StateDisconnected))
		return fmt.Errorf("telemetry hello: %w", err)
	}

	c.state.Store(int32(StateConnected))
	return nil
}

// Close sends a BYE message and shuts down the TCP connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	// Best-effort BYE — ignore write errors on an already-closed conn
	_ = c.sendMessageLocked(MsgBye, nil)

	err := c.conn.Close()
	c.conn = nil
	c.state.Store(int32(StateDisconnected))
	return err
}

// RequestState sends a REQUEST_STATE message asking the feed for a fresh
// flight-state sample.
func (c *Client) RequestState() error {
	return c.sendMessage(MsgRequestState, nil)
}

// sendMessage sends a framed message (header + payload) over the connection.
// Thread-safe: acquires the mutex.
func (c *Client) sendMessage(msgType uint32, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendMessageLocked(msgType, payload)
}

// sendMessageLocked sends a message; caller must hold c.mu.
func (c *Client) sendMessageLocked(msgType uint32, payload []byte) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	id := c.nextID.Add(1)
	header := EncodeHeader(msgType, id, len(payload))

	if _, err := c.conn.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := c.conn.Write(payload); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
	}
	return nil
}

// ReadNext reads the next complete framed message from the connection.
func (c *Client) ReadNext() (Header, []byte, error) {
	if c.conn == nil {
		return Header{}, nil, ErrNotConnected
	}

	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(c.conn, headerBuf); err != nil {
		return Header{}, nil, fmt.Errorf("read header: %w", err)
	}

	h, err := DecodeHeader(headerBuf)
	if err != nil {
		return Header{}, nil, err
	}

	payloadSize := h.Size - HeaderSize
	if payloadSize == 0 {
		return h, nil, nil
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		return Header{}, nil, fmt.Errorf("read payload: %w", err)
	}
	return h, payload, nil
}
