// Package scheme turns source images into base16 and base24 color schemes.
//
// A scheme is assembled from two cooperating halves: an eight step gradient
// between a background and a foreground anchor fills base00-base07, and the
// curated palette hues fill the accent slots. The run is all-or-nothing; any
// stage failure surfaces as one of the package errors.
package scheme

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// System selects the slot family to fill: classic base16 or the extended
// base24 with muted accent companions.
type System int

const (
	Base16 System = iota
	Base24
)

func (s System) String() string {
	if s == Base24 {
		return "base24"
	}

	return "base16"
}

// ParseSystem reads a system name, case-insensitively.
func ParseSystem(raw string) (System, error) {
	switch strings.ToLower(raw) {
	case "base16":
		return Base16, nil
	case "base24":
		return Base24, nil
	default:
		return Base16, fmt.Errorf("unknown scheme system %q", raw)
	}
}

// Variant is the requested brightness polarity. VariantAuto parses but
// cannot be generated; FromImage rejects it with
// ErrUnsupportedSchemeVariant.
type Variant int

const (
	VariantDark Variant = iota
	VariantLight
	VariantAuto
)

func (v Variant) String() string {
	switch v {
	case VariantLight:
		return "light"
	case VariantAuto:
		return "auto"
	default:
		return "dark"
	}
}

// ParseVariant reads a variant name, case-insensitively.
func ParseVariant(raw string) (Variant, error) {
	switch strings.ToLower(raw) {
	case "dark":
		return VariantDark, nil
	case "light":
		return VariantLight, nil
	case "auto":
		return VariantAuto, nil
	default:
		return VariantDark, fmt.Errorf("unknown scheme variant %q", raw)
	}
}

// Scheme is a named color scheme in the tinted-theming layout.
type Scheme struct {
	System      System
	Name        string
	Slug        string
	Author      string
	Description mo.Option[string]
	Variant     Variant
	Palette     *SlotMap
}
