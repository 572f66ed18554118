package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Connection timings. keepaliveInterval stays below idleTimeout so a healthy
// peer always answers a ping before its read deadline passes.
const (
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	keepaliveInterval = idleTimeout * 9 / 10

	// Views never send payloads, only control frames
	inboundLimit = 512

	queueSize = 256
)

// Client is one connected budget view. Events queued with Send are written in order
// by the goroutine started in Serve.
type Client struct {
	id      string
	subject string
	conn    *websocket.Conn
	hub     *Hub

	queue     chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps an upgraded connection. subject is "local" when authentication is disabled.
func NewClient(conn *websocket.Conn, subject string, hub *Hub) *Client {
	return &Client{
		id:      uuid.NewString(),
		subject: subject,
		conn:    conn,
		hub:     hub,
		queue:   make(chan []byte, queueSize),
		done:    make(chan struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) Subject() string {
	return c.subject
}

// Send queues data without blocking. A view whose queue is full has fallen too far
// behind to catch up and is disconnected.
func (c *Client) Send(data []byte) error {
	if c.IsClosed() {
		return ErrClientClosed
	}

	select {
	case c.queue <- data:
		return nil
	default:
		log.Warn().Str("client_id", c.id).Int("queued", len(c.queue)).Msg("WebSocket view too slow, disconnecting")
		c.Close()
		return ErrClientClosed
	}
}

// Close stops the client. The writer sends a close frame and releases the connection.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return nil
}

func (c *Client) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Serve runs the client until the peer goes away or the client is closed.
// It blocks while reading, so callers start it in its own goroutine.
func (c *Client) Serve() {
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		c.writeLoop()
	}()

	c.readLoop()

	c.hub.Unregister(c)
	c.Close()
	<-writerDone
}

// readLoop discards inbound frames and keeps the read deadline moving on pongs
func (c *Client) readLoop() {
	c.conn.SetReadLimit(inboundLimit)
	c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !c.IsClosed() {
				log.Debug().Err(err).Str("client_id", c.id).Str("subject", c.subject).Msg("WebSocket view disconnected")
			}
			return
		}
	}
}

func (c *Client) writeLoop() {
	keepalive := time.NewTicker(keepaliveInterval)
	defer func() {
		keepalive.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.queue:
			if err := c.write(websocket.TextMessage, data); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Str("subject", c.subject).Msg("WebSocket write failed")
				c.Close()
				return
			}
		case <-keepalive.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}
