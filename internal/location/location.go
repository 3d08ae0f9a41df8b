package location

import (
	"ridgecast/internal/types"
)

// Location is one entry of the static site reference table.
type Location struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Coordinates types.Coordinates `json:"coordinates"`
	MapURL      string            `json:"map_url"`
}

// Category returns the risk ruleset category for this location.
func (l Location) Category() types.Category {
	return CategoryOf(l.Code)
}

// roadCodes is the fixed membership set of highway location codes. Every code
// outside this set is a mountain site. "nz" is a road code with no table
// entry; category is defined for it anyway so the classification stays a pure
// function of the code.
var roadCodes = map[string]struct{}{
	"t14j": {},
	"t8":   {},
	"t7":   {},
	"nz":   {},
}

// CategoryOf derives the category from a location code. It never fails:
// unknown codes default to mountain, matching the road/mountain split of the
// supported sites.
func CategoryOf(code string) types.Category {
	if _, ok := roadCodes[code]; ok {
		return types.CategoryRoad
	}
	return types.CategoryMountain
}

// locations is the process-wide reference table of supported sites. It is
// never mutated after init; Lookup and All are the only access paths.
var locations = []Location{
	{
		Code:        "hhs",
		Name:        "合歡山",
		Coordinates: types.NewCoords(24.15, 121.27),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=fea672521dfe414597bb73819fdee87f",
	},
	{
		Code:        "tps",
		Name:        "太平山",
		Coordinates: types.NewCoords(24.48, 121.53),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=e9e10c2abc134b5b96e89e98bbf9b24f",
	},
	{
		Code:        "ys",
		Name:        "玉山",
		Coordinates: types.NewCoords(23.47, 120.96),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=b035df9646804489989e754ca8a2494a",
	},
	{
		Code:        "sp",
		Name:        "雪霸國家公園",
		Coordinates: types.NewCoords(24.38, 121.03),
		MapURL:      "https://archive.maps.arcgis.com/apps/configure-template/index.html?appid=2fc2d80fe8144ac7a13118341f242bae",
	},
	{
		Code:        "yms",
		Name:        "陽明山、七星山",
		Coordinates: types.NewCoords(25.15, 121.55),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=38ade048ccb5409c8604d6d1d887e68d",
	},
	{
		Code:        "wl",
		Name:        "武陵農場",
		Coordinates: types.NewCoords(24.37, 121.32),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=f583791e3f514a659005eacb6a20c5a0",
	},
	{
		Code:        "t14j",
		Name:        "台14甲線",
		Coordinates: types.NewCoords(24.12, 121.27),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=f17b53fbf44d4294af12330a7349f0d5",
	},
	{
		Code:        "t8",
		Name:        "台8線",
		Coordinates: types.NewCoords(24.18, 121.33),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=0ee94777e4d24406824e3588824e00e8",
	},
	{
		Code:        "t7",
		Name:        "台7線",
		Coordinates: types.NewCoords(24.42, 121.21),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=7d2c06ef3c2844948c2ff104d66d2296",
	},
	{
		Code:        "t7j",
		Name:        "台7甲線",
		Coordinates: types.NewCoords(24.42, 121.36),
		MapURL:      "https://archive.maps.arcgis.com/apps/instant/interactivelegend/index.html?appid=be188814208b4c3785e090de2e066a53",
	},
}

// Lookup returns the reference entry for a location code.
func Lookup(code string) (Location, bool) {
	for _, l := range locations {
		if l.Code == code {
			return l, true
		}
	}
	return Location{}, false
}

// All returns a copy of the reference table in its canonical order.
func All() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}
