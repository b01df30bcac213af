package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"
	"easytrack/internal/models"
)

// OSRMProvider implements Provider against an OSRM HTTP backend
type OSRMProvider struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

// osrmResponse - the part of the OSRM route response the service reads
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// NewOSRMProvider creates the routing provider with a bounded request timeout
func NewOSRMProvider(cfg *config.RoutingConfig, log *logger.Logger) *OSRMProvider {
	return &OSRMProvider{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:     log,
	}
}

// Ready reports whether the provider is configured
func (p *OSRMProvider) Ready() bool {
	return p.baseURL != ""
}

// Route queries one driving leg. OSRM has no live-traffic weighting, so
// DurationInTraffic stays unset and callers fall back to the free-flow duration
func (p *OSRMProvider) Route(ctx context.Context, origin, destination models.LatLng, trafficAware bool) (*models.Leg, error) {
	// OSRM takes coordinates longitude-first
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson",
		p.baseURL, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.WithError(err).Error("Failed to get response from OSRM")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		p.log.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"respBody":    string(body),
		}).Error("Bad response from OSRM")
		return nil, fmt.Errorf("bad response with status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Error("Failed to read response body")
		return nil, err
	}

	var parsed osrmResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		p.log.WithError(err).Error("Failed to unmarshal OSRM response")
		return nil, err
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, fmt.Errorf("no route found (code %q)", parsed.Code)
	}

	route := parsed.Routes[0]
	path := make([]models.LatLng, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		path = append(path, models.LatLng{Lat: pair[1], Lng: pair[0]})
	}

	return &models.Leg{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Path:            path,
	}, nil
}

// Snap returns the road-snapped path between two adjacent waypoints
func (p *OSRMProvider) Snap(ctx context.Context, from, to models.LatLng) ([]models.LatLng, error) {
	leg, err := p.Route(ctx, from, to, false)
	if err != nil {
		return nil, err
	}
	return leg.Path, nil
}
