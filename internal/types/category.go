package types

import "fmt"

// Category classifies a site by which risk ruleset applies to it.
// Mountain sites get independent per-condition risk findings; road sites get
// a single three-tier road-condition rating with a traffic-light color.
type Category int

const (
	CategoryMountain Category = iota
	CategoryRoad
)

func (c Category) String() string {
	switch c {
	case CategoryMountain:
		return "mountain"
	case CategoryRoad:
		return "road"
	default:
		return fmt.Sprintf("unknown (%d)", int(c))
	}
}

// MarshalJSON renders the category as its lowercase string form
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
