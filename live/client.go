package live

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	revolving "github.com/marben/revolving_ifs"
)

// ReadLimit caps incoming messages; plot frames are full PNG images.
const ReadLimit = 32 << 20

// Client is the thin end of a live session.
type Client struct {
	conn *websocket.Conn
}

// Event is one server message: either a frame or a status.
type Event struct {
	Canvas byte
	PNG    []byte
	Status *Status
}

func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	conn.SetReadLimit(ReadLimit)
	return &Client{conn: conn}, nil
}

func (c *Client) Send(ctx context.Context, m Message) error {
	return wsjson.Write(ctx, c.conn, m)
}

func (c *Client) SetParams(ctx context.Context, p revolving.Params) error {
	return c.Send(ctx, Message{Type: TypeParams, Params: &p})
}

// Next blocks for the next server message.
func (c *Client) Next(ctx context.Context) (Event, error) {
	typ, data, err := c.conn.Read(ctx)
	if err != nil {
		return Event{}, err
	}
	if typ == websocket.MessageBinary {
		id, img, err := DecodeFrame(data)
		return Event{Canvas: id, PNG: img}, err
	}

	var st Status
	if err := json.Unmarshal(data, &st); err != nil {
		return Event{}, fmt.Errorf("decode status: %w", err)
	}
	return Event{Status: &st}, nil
}

func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
