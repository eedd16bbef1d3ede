// Package client maintains the websocket connection to the assistant server
// and translates its event stream into typed envelopes for the UI.
package client

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Options tune connection behavior. The zero value gets sensible defaults.
type Options struct {
	ReconnectAttempts int           // per-disconnect retry budget, default 5
	ReconnectDelay    time.Duration // base delay, doubled per retry, default 1s
	Logger            *slog.Logger  // default slog.Default()
}

// Client is the assistant server connection. Events arrive on Events();
// commands go out through SetBotMuted and SendText. Close is idempotent.
type Client struct {
	url  string
	opts Options
	log  *slog.Logger

	mu   sync.Mutex
	conn *websocket.Conn

	events    chan Envelope
	done      chan struct{}
	closeOnce sync.Once
}

// ErrNotConnected is returned by write operations while no connection is up.
var ErrNotConnected = errors.New("client: not connected")

// New creates a client for the given websocket URL. Connect starts it.
func New(url string, opts Options) *Client {
	if opts.ReconnectAttempts == 0 {
		opts.ReconnectAttempts = 5
	}
	if opts.ReconnectDelay == 0 {
		opts.ReconnectDelay = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		url:    url,
		opts:   opts,
		log:    opts.Logger.With("component", "client"),
		events: make(chan Envelope, 64),
		done:   make(chan struct{}),
	}
}

// Connect dials the server and starts the read loop. The loop reconnects on
// its own after read failures until the retry budget runs out or Close is
// called.
func (c *Client) Connect() error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	c.setConn(conn)
	c.emit(Envelope{Type: EventConnected})
	go c.readLoop(conn)
	return nil
}

// Events returns the channel carrying server events and synthetic connection
// state events. The channel closes when the client shuts down for good.
func (c *Client) Events() <-chan Envelope {
	return c.events
}

// SetBotMuted asks the server to mute or unmute the bot's audio output. The
// authoritative state comes back as a bot-audio-mute event.
func (c *Client) SetBotMuted(muted bool) error {
	return c.write(Envelope{Type: CmdSetBotAudioMute, Muted: muted})
}

// SendText submits a typed user message to the pipeline.
func (c *Client) SendText(text string) error {
	return c.write(Envelope{Type: CmdTextMessage, Text: text})
}

// Close tears the connection down. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		if c.conn != nil {
			c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()
	})
	return nil
}

func (c *Client) dial() (*websocket.Conn, error) {
	c.log.Debug("dialing assistant server", "url", c.url)
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Client) write(ev Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return ErrNotConnected
	}
	return c.conn.WriteJSON(ev)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var ev Envelope
		if err := conn.ReadJSON(&ev); err != nil {
			if c.closed() {
				close(c.events)
				return
			}
			c.log.Warn("read failed, reconnecting", "err", err)
			next := c.reconnect()
			if next == nil {
				c.emit(Envelope{Type: EventDisconnected})
				close(c.events)
				return
			}
			conn = next
			continue
		}
		c.emit(ev)
	}
}

// reconnect retries the dial with doubling delays. Returns nil when the
// budget is exhausted or the client was closed meanwhile.
func (c *Client) reconnect() *websocket.Conn {
	delay := c.opts.ReconnectDelay
	for attempt := 1; attempt <= c.opts.ReconnectAttempts; attempt++ {
		c.emit(Envelope{Type: EventReconnecting})

		select {
		case <-c.done:
			return nil
		case <-time.After(delay):
		}

		conn, err := c.dial()
		if err == nil {
			c.setConn(conn)
			c.emit(Envelope{Type: EventConnected})
			return conn
		}
		c.log.Warn("reconnect failed", "attempt", attempt, "err", err)
		delay *= 2
	}
	return nil
}

func (c *Client) emit(ev Envelope) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func (c *Client) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
