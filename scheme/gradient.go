package scheme

import "github.com/tinge-cli/tinge/chroma"

// Interpolate mixes two colors channel-wise at parameter t, truncating
// each channel toward zero.
func Interpolate(start, end chroma.RGB, t float64) chroma.RGB {
	return chroma.RGB{
		R: lerpChannel(start.R, end.R, t),
		G: lerpChannel(start.G, end.G, t),
		B: lerpChannel(start.B, end.B, t),
	}
}

func lerpChannel(start, end uint8, t float64) uint8 {
	return uint8(float64(start) + t*(float64(end)-float64(start)))
}

// Gradient returns steps evenly spaced colors running from one endpoint to
// the other, both endpoints included.
func Gradient(from, to chroma.RGB, steps int) []chroma.RGB {
	if steps <= 0 {
		return nil
	}

	if steps == 1 {
		return []chroma.RGB{from}
	}

	gradient := make([]chroma.RGB, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		gradient = append(gradient, Interpolate(from, to, t))
	}

	return gradient
}
