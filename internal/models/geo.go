package models

// LatLng - a single geographic point. All coordinates inside the service are
// latitude-first; conversion from the storage format happens at the store boundary
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeoPoint - storage/wire representation of a position. The backend keeps geo columns
// GeoJSON-style, i.e. longitude-first: {"coordinates": [lng, lat]}
type GeoPoint struct {
	Coordinates [2]float64 `json:"coordinates"`
}

// ToLatLng converts the longitude-first pair into the internal representation
func (p *GeoPoint) ToLatLng() *LatLng {
	if p == nil {
		return nil
	}
	return &LatLng{Lat: p.Coordinates[1], Lng: p.Coordinates[0]}
}

// FromLatLng converts an internal point back into the longitude-first storage form
func FromLatLng(pt *LatLng) *GeoPoint {
	if pt == nil {
		return nil
	}
	return &GeoPoint{Coordinates: [2]float64{pt.Lng, pt.Lat}}
}

// Equal reports whether two optional points denote the same position
func (ll *LatLng) Equal(other *LatLng) bool {
	if ll == nil || other == nil {
		return ll == other
	}
	return ll.Lat == other.Lat && ll.Lng == other.Lng
}
