package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shulchan-app/shulchan-backend/internal/config"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
)

func newGeoTestService(t *testing.T, handler http.HandlerFunc) (*GeoService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewGeoService(&config.Config{
		MapsAPIKey:      "test-key",
		MapsRegionCode:  "il",
		GeocodeTimeout:  5 * time.Second,
		GeocodeCacheTTL: time.Minute,
	})
	svc.geocodeURL = srv.URL
	svc.placesURL = srv.URL
	return svc, srv
}

func TestGeocode_ResolvesAddress(t *testing.T) {
	var gotRegion string
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotRegion = r.URL.Query().Get("region")
		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":31.7683,"lng":35.2137}}}]}`)
	})

	coords, err := svc.Geocode(context.Background(), "12 Bayit Vagan, Jerusalem")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords == nil || coords.Lat != 31.7683 || coords.Lng != 35.2137 {
		t.Errorf("wrong coordinates: %+v", coords)
	}
	if gotRegion != "il" {
		t.Errorf("region code not forwarded, got %q", gotRegion)
	}
}

func TestGeocode_UnknownAddressIsNotAnError(t *testing.T) {
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	coords, err := svc.Geocode(context.Background(), "no such place")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords != nil {
		t.Errorf("expected nil coords for unresolvable address, got %+v", coords)
	}
}

func TestGeocode_EmptyAddressSkipsRequest(t *testing.T) {
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty address")
	})

	coords, err := svc.Geocode(context.Background(), "")
	if err != nil || coords != nil {
		t.Errorf("got (%+v, %v), want (nil, nil)", coords, err)
	}
}

func TestGeocode_CachesResults(t *testing.T) {
	calls := 0
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":32.0853,"lng":34.7818}}}]}`)
	})

	for i := 0; i < 3; i++ {
		if _, err := svc.Geocode(context.Background(), "8 Rothschild, Tel Aviv"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
}

func TestGeocode_UpstreamErrorSurfaces(t *testing.T) {
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := svc.Geocode(context.Background(), "somewhere"); err == nil {
		t.Error("expected error for upstream 500")
	}
}

type fakeGeocoder struct {
	calls []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*dto.LatLng, error) {
	f.calls = append(f.calls, address)
	if address == "broken" {
		return nil, fmt.Errorf("upstream down")
	}
	return &dto.LatLng{Lat: 1, Lng: 2}, nil
}

func (f *fakeGeocoder) Autocomplete(context.Context, string) ([]string, error) {
	return nil, nil
}

func TestGeocodeBatch_CapsAtLimit(t *testing.T) {
	addresses := make([]string, maxGeocodeBatch+10)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("address %d", i)
	}

	g := &fakeGeocoder{}
	out := GeocodeBatch(context.Background(), g, addresses)

	if len(g.calls) != maxGeocodeBatch {
		t.Errorf("expected %d upstream calls, got %d", maxGeocodeBatch, len(g.calls))
	}
	if len(out) != maxGeocodeBatch {
		t.Errorf("expected %d results, got %d", maxGeocodeBatch, len(out))
	}
	if _, present := out[addresses[maxGeocodeBatch]]; present {
		t.Error("address beyond the cap must be dropped, not resolved")
	}
}

func TestGeocodeBatch_FailedAddressMapsToNull(t *testing.T) {
	g := &fakeGeocoder{}
	out := GeocodeBatch(context.Background(), g, []string{"ok", "broken"})

	if out["ok"] == nil {
		t.Error("resolvable address missing from result")
	}
	if coords, present := out["broken"]; !present || coords != nil {
		t.Errorf("failed address must map to null, got (%+v, %v)", coords, present)
	}
}

func TestAutocomplete_ParsesSuggestions(t *testing.T) {
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("X-Goog-Api-Key") != "test-key" {
			t.Error("api key header missing")
		}
		fmt.Fprint(w, `{"suggestions":[
			{"placePrediction":{"text":{"text":"Jerusalem, Israel"}}},
			{"placePrediction":{"text":{"text":""}}},
			{"placePrediction":{"text":{"text":"Jezreel Valley, Israel"}}}
		]}`)
	})

	got, err := svc.Autocomplete(context.Background(), "Je")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Jerusalem, Israel", "Jezreel Valley, Israel"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAutocomplete_EmptyInput(t *testing.T) {
	svc, _ := newGeoTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	})

	got, err := svc.Autocomplete(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}
