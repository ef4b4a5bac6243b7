// Package catalog loads the sky catalogs the scene draws: bright stars,
// constellation figures, deep-sky objects and their image overlays.
package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// ErrNotFound is returned when a catalog source does not exist.
var ErrNotFound = errors.New("catalog source not found")

// ObjectType classifies a deep-sky object for its fallback palette.
type ObjectType int

const (
	TypeUnknown ObjectType = iota
	TypeGalaxy
	TypeNebula
	TypeCluster
)

func (t ObjectType) String() string {
	switch t {
	case TypeGalaxy:
		return "galaxy"
	case TypeNebula:
		return "nebula"
	case TypeCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// ParseObjectType maps catalog type strings, including common subtypes, to a
// palette class.
func ParseObjectType(s string) ObjectType {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "galaxy"):
		return TypeGalaxy
	case strings.Contains(s, "nebula"), s == "snr", s == "hii":
		return TypeNebula
	case strings.Contains(s, "cluster"), s == "oc", s == "gc":
		return TypeCluster
	default:
		return TypeUnknown
	}
}

// Overlay describes a sky-registered image for one object. Corners are
// ordered bottomLeft, bottomRight, topRight, topLeft.
type Overlay struct {
	ID           string
	ImageURL     string
	ThumbnailURL string
	Corners      [4]astro.Equatorial
	// MinResolution is the degrees-per-pixel below which the image is shown.
	MinResolution float64
	Brightness    float64
	Credit        string
}

// Object is a deep-sky object.
type Object struct {
	ID    string
	Name  string
	RA    float64 // degrees
	Dec   float64 // degrees
	Mag   float64
	Type  ObjectType
	Major float64 // angular size, arcminutes
	Minor float64
	// SpriteURL is an optional legacy marker texture.
	SpriteURL string
}

// Catalog is one published session catalog. It is read-only once published.
type Catalog struct {
	Stars          astro.StarCatalog
	Constellations []astro.Constellation
	Objects        []Object
	Overlays       map[string]Overlay
	LoadedAt       time.Time
	// Builtin lists the parts that fell back to the built-in data.
	Builtin []string
}

// Overlay returns the overlay for an object ID.
func (c *Catalog) Overlay(id string) (Overlay, bool) {
	if c == nil || c.Overlays == nil {
		return Overlay{}, false
	}
	o, ok := c.Overlays[id]
	return o, ok
}

// Object looks up a deep-sky object by ID.
func (c *Catalog) Object(id string) (Object, error) {
	if c != nil {
		for _, o := range c.Objects {
			if o.ID == id {
				return o, nil
			}
		}
	}
	return Object{}, ErrNotFound
}

// withOverlays returns a shallow copy carrying a new overlay map.
func (c *Catalog) withOverlays(m map[string]Overlay) *Catalog {
	next := *c
	next.Overlays = m
	return &next
}

// Builtin returns a catalog made entirely of built-in data.
func Builtin() *Catalog {
	return &Catalog{
		Stars:          astro.DefaultStarCatalog(),
		Constellations: astro.DefaultConstellations(),
		Objects:        DefaultObjects(),
		Overlays:       map[string]Overlay{},
		LoadedAt:       time.Now(),
		Builtin:        []string{partStars, partConstellations, partObjects, partManifest},
	}
}

const (
	partStars          = "stars"
	partConstellations = "constellations"
	partObjects        = "objects"
	partManifest       = "manifest"
)
