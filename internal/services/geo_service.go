package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/shulchan-app/shulchan-backend/internal/config"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
)

// maxGeocodeBatch caps how many addresses one request may resolve.
const maxGeocodeBatch = 25

// Geocoder resolves free-text addresses and partial place queries. Handlers
// accept this interface so tests can plug in fakes.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*dto.LatLng, error)
	Autocomplete(ctx context.Context, input string) ([]string, error)
}

// GeoService talks to the Google Maps web APIs, caching successful geocode
// results since addresses in profiles change rarely.
type GeoService struct {
	apiKey     string
	regionCode string
	httpClient *http.Client
	geocodeURL string
	placesURL  string

	mu       sync.RWMutex
	cache    map[string]geoCacheEntry
	cacheTTL time.Duration
}

type geoCacheEntry struct {
	coords    *dto.LatLng
	expiresAt time.Time
}

func NewGeoService(cfg *config.Config) *GeoService {
	return &GeoService{
		apiKey:     cfg.MapsAPIKey,
		regionCode: cfg.MapsRegionCode,
		httpClient: &http.Client{Timeout: cfg.GeocodeTimeout},
		geocodeURL: "https://maps.googleapis.com/maps/api/geocode/json",
		placesURL:  "https://places.googleapis.com/v1/places:autocomplete",
		cache:      make(map[string]geoCacheEntry),
		cacheTTL:   cfg.GeocodeCacheTTL,
	}
}

type geocodeAPIResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves one address to coordinates. An address Google cannot
// resolve returns (nil, nil): unknown places are an expected outcome, not a
// failure.
func (s *GeoService) Geocode(ctx context.Context, address string) (*dto.LatLng, error) {
	if address == "" {
		return nil, nil
	}

	if coords, ok := s.cached(address); ok {
		return coords, nil
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("region", s.regionCode)
	q.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.geocodeURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode endpoint returned status %d", resp.StatusCode)
	}

	var parsed geocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		s.store(address, nil)
		return nil, nil
	}

	loc := parsed.Results[0].Geometry.Location
	coords := &dto.LatLng{Lat: loc.Lat, Lng: loc.Lng}
	s.store(address, coords)
	return coords, nil
}

// GeocodeBatch resolves up to maxGeocodeBatch addresses, mapping each to its
// coordinates or null. Extra addresses are silently dropped, matching the
// per-request cap of the maps backend.
func GeocodeBatch(ctx context.Context, g Geocoder, addresses []string) dto.GeocodeResponse {
	if len(addresses) > maxGeocodeBatch {
		addresses = addresses[:maxGeocodeBatch]
	}

	out := make(dto.GeocodeResponse, len(addresses))
	for _, addr := range addresses {
		coords, err := g.Geocode(ctx, addr)
		if err != nil {
			slog.Error("geocode failed", "error", err)
			coords = nil
		}
		out[addr] = coords
	}
	return out
}

type autocompleteAPIResponse struct {
	Suggestions []struct {
		PlacePrediction struct {
			Text struct {
				Text string `json:"text"`
			} `json:"text"`
		} `json:"placePrediction"`
	} `json:"suggestions"`
}

// Autocomplete returns human-readable place-name suggestions for a partial
// query. An empty input yields no suggestions.
func (s *GeoService) Autocomplete(ctx context.Context, input string) ([]string, error) {
	if input == "" {
		return []string{}, nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"input":               input,
		"includedRegionCodes": []string{s.regionCode},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.placesURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", "suggestions.placePrediction.text")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autocomplete endpoint returned status %d", resp.StatusCode)
	}

	var parsed autocompleteAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode autocomplete response: %w", err)
	}

	suggestions := make([]string, 0, len(parsed.Suggestions))
	for _, sug := range parsed.Suggestions {
		if text := sug.PlacePrediction.Text.Text; text != "" {
			suggestions = append(suggestions, text)
		}
	}
	return suggestions, nil
}

func (s *GeoService) cached(address string) (*dto.LatLng, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[address]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.coords, true
}

func (s *GeoService) store(address string, coords *dto.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[address] = geoCacheEntry{coords: coords, expiresAt: time.Now().Add(s.cacheTTL)}
}
