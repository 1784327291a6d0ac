package domain

import (
	"math"
	"sort"
)

const EarthRadiusKm = 6371.0

type Coordinates struct {
	latitude  float64
	longitude float64
}

func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || math.IsNaN(longitude) ||
		latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}

	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

func (c Coordinates) Latitude() float64 {
	return c.latitude
}

func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c Coordinates) DistanceKmTo(other Coordinates) float64 {
	return HaversineDistanceKm(c.latitude, c.longitude, other.latitude, other.longitude)
}

// HaversineDistanceKm is the great-circle distance on a spherical Earth.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// BoundingBox is a coarse lat/lon rectangle used to prefilter storage queries.
type BoundingBox struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

func (b BoundingBox) Contains(c Coordinates) bool {
	return c.latitude >= b.MinLatitude && c.latitude <= b.MaxLatitude &&
		c.longitude >= b.MinLongitude && c.longitude <= b.MaxLongitude
}

func WorldBoundingBox() BoundingBox {
	return BoundingBox{MinLatitude: -90, MaxLatitude: 90, MinLongitude: -180, MaxLongitude: 180}
}

// BoundingBoxAround returns a box that contains every point within radiusKm of
// center on the same sphere HaversineDistanceKm measures. A non-positive radius
// yields the whole world.
func BoundingBoxAround(center Coordinates, radiusKm float64) BoundingBox {
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return WorldBoundingBox()
	}

	angular := radiusKm / EarthRadiusKm
	if angular >= math.Pi/2 {
		return WorldBoundingBox()
	}

	latDelta := radiansToDegrees(angular)
	box := BoundingBox{
		MinLatitude: math.Max(-90, center.latitude-latDelta),
		MaxLatitude: math.Min(90, center.latitude+latDelta),
	}

	if box.MinLatitude <= -90 || box.MaxLatitude >= 90 {
		box.MinLongitude, box.MaxLongitude = -180, 180

		return box
	}

	// widest longitude reached by the spherical cap
	s := math.Sin(angular) / math.Cos(degreesToRadians(center.latitude))
	if s >= 1 {
		box.MinLongitude, box.MaxLongitude = -180, 180

		return box
	}

	lonDelta := radiansToDegrees(math.Asin(s))
	if center.longitude-lonDelta < -180 || center.longitude+lonDelta > 180 {
		// crosses the antimeridian
		box.MinLongitude, box.MaxLongitude = -180, 180

		return box
	}

	box.MinLongitude = center.longitude - lonDelta
	box.MaxLongitude = center.longitude + lonDelta

	return box
}

// RankByDistance sorts locations nearest first. Non-positive radiusKm or limit
// disable the respective filter.
func RankByDistance(locations []*ServiceLocation, origin Coordinates, radiusKm float64, limit int) []LocationDistance {
	ranked := make([]LocationDistance, 0, len(locations))
	for _, l := range locations {
		d := origin.DistanceKmTo(l.Coordinates())
		if radiusKm > 0 && d > radiusKm {
			continue
		}

		ranked = append(ranked, LocationDistance{Location: l, DistanceKm: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}

		return ranked[i].Location.Name() < ranked[j].Location.Name()
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
