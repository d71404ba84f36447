package pac

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// earthRadiusMeters is the IUGG mean radius, used to turn s2 angles into metres.
const earthRadiusMeters = 6371008.8

// Distance returns the great-circle distance in metres between the centers of
// two decoded codes. Both results must be valid.
func Distance(a, b DecodeResult) (float64, error) {
	if !a.Valid {
		return 0, fmt.Errorf("first code: %w: %s", ErrInvalidCode, a.Reason)
	}
	if !b.Valid {
		return 0, fmt.Errorf("second code: %w: %s", ErrInvalidCode, b.Reason)
	}
	return greatCircle(a.Latitude, a.Longitude, b.Latitude, b.Longitude), nil
}

// DistanceBetween decodes both codes and returns the distance between them in metres.
func DistanceBetween(codeA, codeB string) (float64, error) {
	return Distance(Decode(codeA), Decode(codeB))
}

func greatCircle(lat1, lon1, lat2, lon2 float64) float64 {
	from := s2.LatLngFromDegrees(lat1, lon1)
	to := s2.LatLngFromDegrees(lat2, lon2)
	return float64(from.Distance(to)) * earthRadiusMeters
}
