// README: Common value objects shared across modules.
package types

// ID is a database-assigned numeric identity (BIGSERIAL primary key).
type ID = int64

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}
