package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/litescript/ls-planetarium/internal/astro"
)

type starJSON struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	RA   float64 `json:"ra"`
	Dec  float64 `json:"dec"`
	Mag  float64 `json:"mag"`
	BV   float64 `json:"bv"`
}

// ParseStars decodes a JSON array of {id, name, ra, dec, mag, bv}.
func ParseStars(data []byte) (astro.StarCatalog, error) {
	var raw []starJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return astro.StarCatalog{}, fmt.Errorf("parse stars: %w", err)
	}

	stars := make([]astro.Star, 0, len(raw))
	for i, s := range raw {
		if s.ID == "" {
			return astro.StarCatalog{}, fmt.Errorf("parse stars: entry %d has no id", i)
		}
		eq := astro.NewEquatorial(s.RA, s.Dec)
		stars = append(stars, astro.Star{
			ID:   s.ID,
			Name: s.Name,
			RA:   eq.RA,
			Dec:  eq.Dec,
			Mag:  s.Mag,
			BV:   s.BV,
		})
	}
	return astro.StarCatalog{Stars: stars}, nil
}

type coordJSON struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

type constellationJSON struct {
	Abbrev string      `json:"abbrev"`
	Name   string      `json:"name"`
	Lines  [][2]string `json:"lines"`
	Label  coordJSON   `json:"label"`
}

// ParseConstellations decodes a JSON array of
// {abbrev, name, lines: [[fromID, toID], ...], label: {ra, dec}}.
func ParseConstellations(data []byte) ([]astro.Constellation, error) {
	var raw []constellationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse constellations: %w", err)
	}

	out := make([]astro.Constellation, 0, len(raw))
	for _, c := range raw {
		segs := make([]astro.ConstellationSegment, 0, len(c.Lines))
		for _, l := range c.Lines {
			segs = append(segs, astro.ConstellationSegment{From: l[0], To: l[1]})
		}
		out = append(out, astro.Constellation{
			Abbrev:   c.Abbrev,
			Name:     c.Name,
			Segments: segs,
			Label:    astro.NewEquatorial(c.Label.RA, c.Label.Dec),
		})
	}
	return out, nil
}

type objectJSON struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	RA     float64 `json:"ra"`
	Dec    float64 `json:"dec"`
	Mag    float64 `json:"mag"`
	Type   string  `json:"type"`
	Major  float64 `json:"major"`
	Minor  float64 `json:"minor"`
	Sprite string  `json:"sprite"`
}

// ParseObjects decodes a JSON array of deep-sky objects.
func ParseObjects(data []byte) ([]Object, error) {
	var raw []objectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse objects: %w", err)
	}

	out := make([]Object, 0, len(raw))
	for i, o := range raw {
		if o.ID == "" {
			return nil, fmt.Errorf("parse objects: entry %d has no id", i)
		}
		eq := astro.NewEquatorial(o.RA, o.Dec)
		out = append(out, Object{
			ID:        o.ID,
			Name:      o.Name,
			RA:        eq.RA,
			Dec:       eq.Dec,
			Mag:       o.Mag,
			Type:      ParseObjectType(o.Type),
			Major:     o.Major,
			Minor:     o.Minor,
			SpriteURL: o.Sprite,
		})
	}
	return out, nil
}

type overlayJSON struct {
	Image         string       `json:"image"`
	Thumbnail     string       `json:"thumbnail"`
	Corners       [4]coordJSON `json:"corners"`
	MinResolution float64      `json:"min_resolution"`
	Brightness    *float64     `json:"brightness"`
	Credit        string       `json:"credit"`
}

// ParseManifest decodes the image-overlay manifest, a JSON object keyed by
// object ID. Corners must be ordered bottomLeft, bottomRight, topRight, topLeft.
func ParseManifest(data []byte) (map[string]Overlay, error) {
	var raw map[string]overlayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	out := make(map[string]Overlay, len(raw))
	for id, o := range raw {
		if o.Image == "" {
			return nil, fmt.Errorf("parse manifest: %s has no image", id)
		}
		if o.MinResolution <= 0 {
			return nil, fmt.Errorf("parse manifest: %s min_resolution must be positive", id)
		}
		ov := Overlay{
			ID:            id,
			ImageURL:      o.Image,
			ThumbnailURL:  o.Thumbnail,
			MinResolution: o.MinResolution,
			Brightness:    1,
			Credit:        o.Credit,
		}
		if o.Brightness != nil {
			ov.Brightness = *o.Brightness
		}
		for i, c := range o.Corners {
			ov.Corners[i] = astro.NewEquatorial(c.RA, c.Dec)
		}
		out[id] = ov
	}
	return out, nil
}
