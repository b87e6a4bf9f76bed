package dto

type GeocodeRequest struct {
	Addresses []string `json:"addresses"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResponse maps each requested address to coordinates, or null when
// the address could not be resolved.
type GeocodeResponse map[string]*LatLng

type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}
