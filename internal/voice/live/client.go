package live

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// DefaultEndpoint is the Gemini Live WebSocket endpoint.
const DefaultEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

// Client is a single Live API WebSocket connection. Sends are
// serialized; Receive must be driven by one reader goroutine.
type Client struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// Dial opens a Live session. The API key travels as a query parameter,
// matching the Live API's key-based auth.
func Dial(ctx context.Context, endpoint, apiKey string) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse live endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial live endpoint: %w (status %d)", err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial live endpoint: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Send writes one client message as JSON.
func (c *Client) Send(msg ClientMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Receive blocks for the next server message.
func (c *Client) Receive() (*ServerMessage, error) {
	var msg ServerMessage
	if err := c.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Close tears the connection down. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
