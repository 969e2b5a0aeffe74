// Serves a locally attached panel to remote clocks over HTTP-RPC.
package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/panel"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/remote"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/proto"
)

var serial = flag.String("serial", "ttyACM0", "serial name of the panel")
var width = flag.Int("width", 64, "panel width in pixels")
var height = flag.Int("height", 32, "panel height in pixels")
var listen = flag.String("listen", ":9123", "listen addr")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*proto.Serial, *http.Server) {
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen}
			},
			func() (*zap.Logger, error) {
				return zap.NewDevelopment()
			},
			func(s *proto.Serial, logger *zap.Logger) (device.Control, error) {
				return panel.New(s, *width, *height, logger)
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
