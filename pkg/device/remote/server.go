package remote

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device"
)

// Proxy exposes a local device over HTTP-RPC so a clock running
// elsewhere can push finished frames to this panel.
func Proxy(dev device.Control, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev device.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	}

	return errors.New("unknown command")
}

func (s *Service) SetBrightness(level uint8, _ *EmptyResponse) error {
	return s.dev.SetBrightness(level)
}

func (s *Service) Push(req *PushFrameRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewReader(req.Frame))
	if err != nil {
		return err
	}

	return s.dev.Push(img)
}
