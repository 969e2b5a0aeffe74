package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device"
)

func New(addr string) (device.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", nil)
}

func (c *Client) Shutdown() error {
	return c.rpc.Call("Service.Command", "shutdown", nil)
}

func (c *Client) SetBrightness(level uint8) error {
	return c.rpc.Call("Service.SetBrightness", level, nil)
}

func (c *Client) Push(frame image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return err
	}

	return c.rpc.Call("Service.Push", &PushFrameRequest{Frame: buf.Bytes()}, nil)
}
