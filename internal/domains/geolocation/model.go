package geolocation

// GeoLocation is a reference entity: a known place names can be associated
// with. The set is curated out of band; this API only reads it.
type GeoLocation struct {
	Place  string `json:"place"`
	Region string `json:"region"`
}
