package arcgis

// Point is a geographic coordinate in the x/y (longitude/latitude) form the
// ArcGIS REST services use.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Candidate is one geocoding match from findAddressCandidates.
type Candidate struct {
	Address  string  `json:"address"`
	Location Point   `json:"location"`
	Score    float64 `json:"score"`
}

// GeocodeAPIResponse is the raw findAddressCandidates response
type GeocodeAPIResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// SpatialReference identifies a coordinate system by well-known id.
// Wkid 4326 is geographic WGS 84.
type SpatialReference struct {
	Wkid int `json:"wkid"`
}

// StopGeometry is a named point feature in a route-solve request.
type StopGeometry struct {
	X                float64          `json:"x"`
	Y                float64          `json:"y"`
	SpatialReference SpatialReference `json:"spatialReference"`
}

// StopFeature pairs a stop geometry with its name attribute (P0, P1, ...).
type StopFeature struct {
	Geometry   StopGeometry `json:"geometry"`
	Attributes Attributes   `json:"attributes"`
}

// Stops is the stops parameter of a route-solve request.
type Stops struct {
	Features         []StopFeature    `json:"features"`
	SpatialReference SpatialReference `json:"spatialReference"`
}

// BarrierGeometry is a polygon ring set in geographic coordinates.
type BarrierGeometry struct {
	Rings            [][][]float64    `json:"rings"`
	SpatialReference SpatialReference `json:"spatialReference"`
}

// BarrierFeature pairs a barrier polygon with its name attribute (B0, B1, ...).
type BarrierFeature struct {
	Geometry   BarrierGeometry `json:"geometry"`
	Attributes Attributes      `json:"attributes"`
}

// PolygonBarriers is the polygonBarriers parameter of a route-solve request.
type PolygonBarriers struct {
	Features []BarrierFeature `json:"features"`
}

// Attributes carries the feature name.
type Attributes struct {
	Name string `json:"Name"`
}
