package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// JoinType represents the SQL join keyword.
type JoinType = types.JoinType

// Re-export join constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
)

// ParseDirection normalizes "asc"/"desc" in any case.
func ParseDirection(s string) (Direction, error) {
	return types.ParseDirection(s)
}
