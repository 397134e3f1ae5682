package palette

import (
	"errors"

	"github.com/samber/lo"
	"github.com/tinge-cli/tinge/chroma"
)

// MaxColorDistance bounds how far a matched color may drift from its anchor
// before curation stops trusting it. Calibration constant, roughly 100 units
// of error per channel.
const MaxColorDistance = 10_000

// ErrNoDominantColors is returned when curation is handed an empty
// dominant-color list instead of silently passing the scan through.
var ErrNoDominantColors = errors.New("no dominant colors")

// CurateInverse merges the scanned palette with its hue-inverted counterpart.
// The inverted candidate for an anchor is the inverse anchor's match, color
// inverted back into the native hue. The direct match survives only when its
// distance both exceeds MaxColorDistance and stays strictly below the
// inverted candidate's; otherwise the inverted candidate takes the slot.
func CurateInverse(scanned Palette) Palette {
	curated := make(Palette, 0, len(scanned))

	for _, direct := range scanned {
		counterpart, ok := scanned.Get(direct.Pure.Inverse())
		if !ok {
			curated = append(curated, direct)
			continue
		}

		inverted := counterpart.Inverse()
		if direct.Distance > MaxColorDistance && direct.Distance < inverted.Distance {
			curated = append(curated, direct)
		} else {
			curated = append(curated, inverted)
		}
	}

	return curated
}

// CurateDominant reconciles the curated palette with the image's dominant
// colors. Every dominant color is tagged against every anchor in the palette;
// attempts at or beyond MaxColorDistance are discarded and the closest
// remaining pairing claims its anchor, with a strictly closer dominant color
// displacing an earlier claim. Anchors never claimed keep their curated
// entry. The result lists one color per anchor in palette order.
func CurateDominant(curated Palette, dominant []chroma.RGB) (Palette, error) {
	if len(dominant) == 0 {
		return nil, ErrNoDominantColors
	}

	claims := make(map[chroma.PureColor]chroma.Color, len(curated))

	for _, value := range dominant {
		attempts := make([]chroma.Color, 0, len(curated))
		for _, entry := range curated {
			attempt := chroma.New(entry.Pure, value)
			if attempt.Distance < MaxColorDistance {
				attempts = append(attempts, attempt)
			}
		}
		if len(attempts) == 0 {
			continue
		}

		closest := lo.MinBy(attempts, func(a, b chroma.Color) bool {
			return a.Distance < b.Distance
		})

		if current, ok := claims[closest.Pure]; !ok || closest.Distance < current.Distance {
			claims[closest.Pure] = closest
		}
	}

	result := make(Palette, 0, len(curated))
	for _, entry := range curated {
		if claim, ok := claims[entry.Pure]; ok {
			result = append(result, claim)
		} else {
			result = append(result, entry)
		}
	}

	return result, nil
}
