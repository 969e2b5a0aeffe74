// Package locate resolves an approximate geographic position from the
// machine's public IP, used to fill in the blended variant's location
// when the operator asks for auto-location.
package locate

import (
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const endpoint = "http://ip-api.com/json"

type Place struct {
	Lat      float64
	Lng      float64
	Timezone string
	Locality string
}

func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		client: resty.New(),
		logger: logger,
	}
}

type Resolver struct {
	client *resty.Client
	logger *zap.Logger
}

type apiResult struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
	City     string  `json:"city"`
}

func (r *Resolver) Resolve() (*Place, error) {
	var ret apiResult

	resp, err := r.client.R().SetResult(&ret).Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "geolocation request failed")
	}
	if !resp.IsSuccess() || ret.Status != "success" {
		return nil, errors.Errorf("geolocation failed: %s", ret.Message)
	}

	r.logger.With(
		zap.Float64("lat", ret.Lat),
		zap.Float64("lng", ret.Lon),
		zap.String("timezone", ret.Timezone),
		zap.String("city", ret.City),
	).Info("located")

	return &Place{
		Lat:      ret.Lat,
		Lng:      ret.Lon,
		Timezone: ret.Timezone,
		Locality: ret.City,
	}, nil
}
