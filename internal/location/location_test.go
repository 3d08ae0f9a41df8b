package location

import (
	"testing"

	"ridgecast/internal/types"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code string
		want types.Category
	}{
		{"t14j", types.CategoryRoad},
		{"t8", types.CategoryRoad},
		{"t7", types.CategoryRoad},
		{"nz", types.CategoryRoad},
		// t7j is a highway code by name but classifies as mountain; the
		// membership set is what counts.
		{"t7j", types.CategoryMountain},
		{"ys", types.CategoryMountain},
		{"hhs", types.CategoryMountain},
		{"yms", types.CategoryMountain},
		{"", types.CategoryMountain},
		{"unknown-code", types.CategoryMountain},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := CategoryOf(tt.code); got != tt.want {
				t.Errorf("CategoryOf(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	loc, ok := Lookup("ys")
	if !ok {
		t.Fatal("Lookup(ys) not found")
	}
	if loc.Name != "玉山" {
		t.Errorf("Lookup(ys).Name = %q, want 玉山", loc.Name)
	}
	if loc.Coordinates.Latitude != 23.47 || loc.Coordinates.Longitude != 120.96 {
		t.Errorf("Lookup(ys).Coordinates = %+v, want (23.47, 120.96)", loc.Coordinates)
	}
	if loc.MapURL == "" {
		t.Error("Lookup(ys).MapURL is empty")
	}
	if loc.Category() != types.CategoryMountain {
		t.Errorf("Lookup(ys).Category() = %v, want mountain", loc.Category())
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should not be found")
	}

	// "nz" has a category but no table entry.
	if _, ok := Lookup("nz"); ok {
		t.Error("Lookup(nz) should not be found")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("All() returned %d entries, want 10", len(all))
	}

	seen := make(map[string]struct{}, len(all))
	for _, l := range all {
		if _, dup := seen[l.Code]; dup {
			t.Errorf("duplicate code %q in reference table", l.Code)
		}
		seen[l.Code] = struct{}{}

		if l.Name == "" || l.MapURL == "" {
			t.Errorf("entry %q has empty name or map URL", l.Code)
		}
		if l.Coordinates.Latitude == 0 || l.Coordinates.Longitude == 0 {
			t.Errorf("entry %q has zero coordinates", l.Code)
		}
	}

	// Mutating the returned slice must not touch the reference table.
	all[0].Code = "mutated"
	if _, ok := Lookup("mutated"); ok {
		t.Error("mutating All() result leaked into the reference table")
	}
}
