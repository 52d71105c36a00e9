// Package catalog holds the fixed set of Google Maps web-service
// endpoints a key is probed against.
package catalog

import "strings"

const keyPlaceholder = "{key}"

// Endpoint pairs a display name with a URL template containing a
// {key} placeholder. Endpoints are immutable once built.
type Endpoint struct {
	Name        string
	URLTemplate string
}

// URLFor substitutes key into the template. The key alphabet is
// URL-safe, so no escaping is applied.
func (e Endpoint) URLFor(key string) string {
	return strings.ReplaceAll(e.URLTemplate, keyPlaceholder, key)
}

// Default returns the probe catalog in its canonical order. Callers
// must not mutate the returned slice.
func Default() []Endpoint {
	return endpoints
}

var endpoints = []Endpoint{
	{"PlacesATM", "https://maps.googleapis.com/maps/api/place/textsearch/json?query=atm+near+melbourne&key={key}"},
	{"Geocoding", "https://maps.googleapis.com/maps/api/geocode/json?address=New+York&key={key}"},
	{"ReverseGeocoding", "https://maps.googleapis.com/maps/api/geocode/json?latlng=40.7128,-74.0060&key={key}"},
	{"PlacesNearby", "https://maps.googleapis.com/maps/api/place/nearbysearch/json?location=40.7128,-74.0060&radius=500&type=restaurant&key={key}"},
	{"PlacesTextSearch", "https://maps.googleapis.com/maps/api/place/textsearch/json?query=pizza+in+New+York&key={key}"},
	{"PlacesDetails", "https://maps.googleapis.com/maps/api/place/details/json?place_id=ChIJOwg_06VPwokRYv534QaPC8g&key={key}"},
	{"Directions", "https://maps.googleapis.com/maps/api/directions/json?origin=New+York,NY&destination=Boston,MA&key={key}"},
	{"DistanceMatrix", "https://maps.googleapis.com/maps/api/distancematrix/json?origins=New+York,NY&destinations=Boston,MA&key={key}"},
	{"TimeZone", "https://maps.googleapis.com/maps/api/timezone/json?location=40.7128,-74.0060&timestamp=1458000000&key={key}"},
	{"Elevation", "https://maps.googleapis.com/maps/api/elevation/json?locations=40.714728,-73.998672&key={key}"},
	{"StaticMap", "https://maps.googleapis.com/maps/api/staticmap?center=New+York,NY&zoom=13&size=600x300&maptype=roadmap&key={key}"},
	{"StreetView", "https://maps.googleapis.com/maps/api/streetview?size=600x300&location=40.720032,-73.988354&heading=151.78&pitch=-0.76&key={key}"},
	{"Autocomplete", "https://maps.googleapis.com/maps/api/place/autocomplete/json?input=Empire%20State&key={key}"},
}
