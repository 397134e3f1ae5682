package tui

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/scheme"
	"github.com/tinge-cli/tinge/style"
)

// previewWidth bounds the wrapped description column.
const previewWidth = 64

// PreviewOptions adjusts how a scheme is painted.
type PreviewOptions struct {
	// Hex annotates every swatch row with its color value.
	Hex bool

	// Filter narrows the slot rows to fuzzy matches of its value.
	Filter string
}

// rampSlots are rendered as a horizontal strip above the slot listing.
var rampSlots = []string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
}

// RenderScheme paints a scheme as terminal swatches: a header, the ramp as a
// horizontal strip, then one row per slot.
func RenderScheme(s *scheme.Scheme, opts PreviewOptions) string {
	var b strings.Builder

	meta := fmt.Sprintf("%s · %s", s.System, s.Variant)
	if s.Author != "" {
		meta += fmt.Sprintf(" · by %s", s.Author)
	}

	b.WriteString(icon.Get(icon.Palette))
	b.WriteString(" ")
	b.WriteString(style.Title(s.Name))
	b.WriteString(" ")
	b.WriteString(style.Faint(meta))
	b.WriteString("\n")

	if description, ok := s.Description.Get(); ok {
		b.WriteString(style.Faint(wordwrap.String(description, previewWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if opts.Filter == "" {
		var ramp strings.Builder
		for _, slot := range rampSlots {
			if hex, ok := s.Palette.Get(slot); ok {
				ramp.WriteString(style.Bg(color.New("#" + hex))("   "))
			}
		}
		if ramp.Len() > 0 {
			b.WriteString(ramp.String())
			b.WriteString("\n\n")
		}
	}

	s.Palette.Each(func(slot, hex string) {
		if opts.Filter != "" && !fuzzy.MatchFold(opts.Filter, slot) {
			return
		}

		b.WriteString(style.Fg(color.Purple)(slot))
		b.WriteString(" ")
		b.WriteString(style.Bg(color.New("#" + hex))("      "))
		if opts.Hex {
			b.WriteString(" ")
			b.WriteString(style.Faint("#" + hex))
		}
		b.WriteString("\n")
	})

	return b.String()
}
