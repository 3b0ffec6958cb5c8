// README: Redis GEO index of mechanic garage locations.
package mechanic

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"mechmatch/internal/types"
)

const geoKey = "mechmatch:mechanics:geo"

// GeoIndex keeps mechanic coordinates in a Redis GEO set so the nearby
// listing does not scan the mechanics table. Postgres stays the source of
// truth; the index is rebuilt opportunistically on writes.
type GeoIndex struct {
	rdb *redis.Client
}

func NewGeoIndex(rdb *redis.Client) *GeoIndex {
	return &GeoIndex{rdb: rdb}
}

func (g *GeoIndex) Add(ctx context.Context, id types.ID, p types.Point) error {
	return g.rdb.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      strconv.FormatInt(id, 10),
		Latitude:  p.Lat,
		Longitude: p.Lng,
	}).Err()
}

// Nearby returns mechanic ids within radiusKm of p, closest first.
func (g *GeoIndex) Nearby(ctx context.Context, p types.Point, radiusKm float64) ([]types.ID, error) {
	results, err := g.rdb.GeoSearch(ctx, geoKey, &redis.GeoSearchQuery{
		Latitude:   p.Lat,
		Longitude:  p.Lng,
		Radius:     radiusKm,
		RadiusUnit: "km",
		Sort:       "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, 0, len(results))
	for _, r := range results {
		id, err := strconv.ParseInt(r, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
