// Package catalog loads the sports catalog from its bundled JSON resource.
//
// The catalog is read once per session and is immutable afterwards. A load
// either yields every record in source order or fails as a whole; there is
// no partial catalog.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// bundled is the catalog resource compiled into the binary.
//
//go:embed sports.json
var bundled []byte

// Sport is the sole domain record: one entry in the sports catalog.
type Sport struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Popularity  float64 `json:"popularity"`
}

// rawSport mirrors Sport with pointer fields so missing keys can be told
// apart from zero values during decoding.
type rawSport struct {
	ID          *int     `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Popularity  *float64 `json:"popularity"`
}

// missingField reports the first absent required field, checked in
// declaration order.
func (r rawSport) missingField() (string, bool) {
	switch {
	case r.ID == nil:
		return "id", true
	case r.Name == nil:
		return "name", true
	case r.Description == nil:
		return "description", true
	case r.Image == nil:
		return "image", true
	case r.Popularity == nil:
		return "popularity", true
	}
	return "", false
}

// Load decodes the bundled catalog resource.
func Load() ([]Sport, error) {
	sports, err := Decode(bundled)
	if err != nil {
		return nil, fmt.Errorf("bundled catalog: %w", err)
	}
	return sports, nil
}

// LoadFile decodes a catalog from an external JSON file. Used when the
// bundled resource is overridden via configuration or the --catalog flag.
func LoadFile(path string) ([]Sport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	sports, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return sports, nil
}

// LoadFrom decodes a catalog from an arbitrary reader.
func LoadFrom(r io.Reader) ([]Sport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON array of sport records. Every element must carry all
// five fields with the correct JSON types; a single bad element fails the
// whole decode and no records are returned. Source order is preserved and
// duplicate ids pass through untouched.
func Decode(data []byte) ([]Sport, error) {
	var raws []rawSport
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}

	sports := make([]Sport, 0, len(raws))
	for i, raw := range raws {
		if field, missing := raw.missingField(); missing {
			return nil, fmt.Errorf("catalog record %d: missing required field %q", i, field)
		}
		sports = append(sports, Sport{
			ID:          *raw.ID,
			Name:        *raw.Name,
			Description: *raw.Description,
			Image:       *raw.Image,
			Popularity:  *raw.Popularity,
		})
	}

	return sports, nil
}

// DuplicateIDs returns the ids that appear more than once, in first-seen
// order. The loader accepts duplicates silently; callers use this to log
// them without changing that behavior.
func DuplicateIDs(sports []Sport) []int {
	seen := make(map[int]int, len(sports))
	var dups []int
	for _, s := range sports {
		seen[s.ID]++
		if seen[s.ID] == 2 {
			dups = append(dups, s.ID)
		}
	}
	return dups
}
