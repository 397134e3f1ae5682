// Package contrast picks the background and foreground anchors of a scheme.
// Candidates are tried in dominance order through an ordered list of
// luminance/saturation passes, strict first, permissive last, and the chosen
// anchors are then pushed into a per-variant validity box.
package contrast

import (
	"errors"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/log"
)

// ErrNoCandidates is returned when the dominant color list is empty.
var ErrNoCandidates = errors.New("no candidate colors")

// pass is one filter stage of an anchor search. Absent bounds are not
// checked. A pass with no bounds accepts the most dominant color.
type pass struct {
	minLuma       mo.Option[float64]
	maxLuma       mo.Option[float64]
	minSaturation mo.Option[float64]
	maxSaturation mo.Option[float64]
	description   string
}

var lightPasses = []pass{
	{
		minLuma:       mo.Some(0.6),
		maxSaturation: mo.Some(0.4),
		description:   "light with low saturation",
	},
	{
		minLuma:       mo.Some(0.7),
		maxSaturation: mo.Some(0.85),
		description:   "very bright, saturation tolerated",
	},
	{
		minLuma:       mo.Some(0.5),
		maxSaturation: mo.Some(0.5),
		description:   "slightly darker",
	},
	{
		minLuma:       mo.Some(0.6),
		maxSaturation: mo.Some(0.85),
		description:   "more saturated",
	},
	{
		minLuma:       mo.Some(0.32),
		maxSaturation: mo.Some(0.4),
		description:   "darker but unsaturated",
	},
	{
		minLuma:     mo.Some(0.4),
		description: "any saturation",
	},
	{
		minLuma:     mo.Some(0.3),
		description: "darker still",
	},
	{
		description: "most dominant color",
	},
}

var darkPasses = []pass{
	{
		minLuma:       mo.Some(0.012),
		maxLuma:       mo.Some(0.1),
		minSaturation: mo.Some(0.18),
		maxSaturation: mo.Some(0.9),
		description:   "dark with a bit of color",
	},
	{
		minLuma:     mo.Some(0.012),
		maxLuma:     mo.Some(0.1),
		description: "dark, any saturation",
	},
	{
		maxLuma:     mo.Some(0.1),
		description: "any dark color",
	},
	{
		description: "most dominant color",
	},
}

// Light finds the light anchor among the candidates, most dominant first.
// It fails only when the candidate list is empty.
func Light(candidates []colorful.Color) (colorful.Color, error) {
	return search("light", lightPasses, candidates)
}

// Dark finds the dark anchor among the candidates, most dominant first.
// It fails only when the candidate list is empty.
func Dark(candidates []colorful.Color) (colorful.Color, error) {
	return search("dark", darkPasses, candidates)
}

func search(anchor string, passes []pass, candidates []colorful.Color) (colorful.Color, error) {
	if len(candidates) == 0 {
		return colorful.Color{}, ErrNoCandidates
	}

	for index, p := range passes {
		found, ok := p.match(candidates)
		if ok {
			log.Debugf("%s anchor found on pass %d: %s", anchor, index+1, p.description)
			return found, nil
		}
	}

	// The terminal pass has no bounds, so a non-empty candidate list never
	// gets here.
	return colorful.Color{}, ErrNoCandidates
}

// match returns the first candidate satisfying every present bound.
func (p pass) match(candidates []colorful.Color) (colorful.Color, bool) {
	for _, candidate := range candidates {
		saturation, luma := satLuma(candidate)

		if p.minLuma.IsPresent() && luma < p.minLuma.MustGet() {
			continue
		}
		if p.maxLuma.IsPresent() && luma > p.maxLuma.MustGet() {
			continue
		}
		if p.minSaturation.IsPresent() && saturation < p.minSaturation.MustGet() {
			continue
		}
		if p.maxSaturation.IsPresent() && saturation > p.maxSaturation.MustGet() {
			continue
		}

		return candidate, true
	}

	return colorful.Color{}, false
}

// satLuma measures a candidate: saturation in HSL space, luminance as the Y
// component of Yxy.
func satLuma(c colorful.Color) (saturation, luma float64) {
	_, saturation, _ = c.Hsl()
	_, _, luma = c.Xyy()
	return saturation, luma
}
