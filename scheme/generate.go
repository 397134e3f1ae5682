package scheme

import (
	"fmt"
	"image"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/chroma"
	"github.com/tinge-cli/tinge/contrast"
	"github.com/tinge-cli/tinge/imageio"
	"github.com/tinge-cli/tinge/log"
	"github.com/tinge-cli/tinge/palette"
	"github.com/tinge-cli/tinge/quantize"
	"github.com/tinge-cli/tinge/util"
)

// Stages reported through Params.Progress, in pipeline order.
const (
	StageScan     = "scanning pixels"
	StageCurate   = "curating hues"
	StageQuantize = "quantizing dominants"
	StageAnchors  = "picking anchors"
	StageAssemble = "assembling slots"
)

const (
	gradientSteps = 8

	// Accents scoring below this on 0.5*saturation + lightness are
	// considered too dim against the background and get brightened.
	accentVisibility = 0.7
)

// accentSlots pairs each accent hue with its base16 slot and, under base24,
// its muted companion slot.
var accentSlots = []struct {
	pure  chroma.PureColor
	slot  string
	muted string
}{
	{chroma.Red, "base08", "base10"},
	{chroma.Orange, "base09", "base11"},
	{chroma.Yellow, "base0A", "base12"},
	{chroma.Green, "base0B", "base13"},
	{chroma.Cyan, "base0C", "base14"},
	{chroma.Blue, "base0D", "base15"},
	{chroma.Purple, "base0E", "base16"},
	{chroma.Brown, "base0F", "base17"},
}

// Params configures a generation run. Zero values for Workers, Quality and
// MaxColors defer to the stage defaults.
type Params struct {
	Name        string
	Slug        string
	Author      string
	Description mo.Option[string]
	System      System
	Variant     Variant

	Workers   int
	Quality   int
	MaxColors int

	// Progress, when set, is called once per pipeline stage.
	Progress func(stage string)
}

func (p Params) progress(stage string) {
	if p.Progress != nil {
		p.Progress(stage)
	}
}

// Generate loads the image at path and synthesizes a scheme from it.
func Generate(path string, params Params) (*Scheme, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}

	if params.Name == "" {
		params.Name = util.FileStem(path)
	}

	return FromImage(img, params)
}

// FromImage runs the full pipeline on a decoded image: scan the pixels for
// the closest match to each pure hue, drop hues that only appear as
// reflections of their inverse, reconcile the survivors with the quantized
// dominant colors, pick and repair the background and foreground anchors,
// then assemble the gradient and accent slots.
func FromImage(img image.Image, params Params) (*Scheme, error) {
	started := time.Now()

	if params.Slug == "" {
		params.Slug = util.Slugify(params.Name)
	}

	params.progress(StageScan)
	normalized := imageio.Normalize(img)
	scanned := palette.Scan(normalized, params.Workers)

	params.progress(StageCurate)
	curated := palette.CurateInverse(scanned)

	params.progress(StageQuantize)
	dominant, err := quantize.Quantize(normalized.Pix, quantize.RGBA, quantize.Options{
		Quality:   params.Quality,
		MaxColors: params.MaxColors,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoColors, err)
	}

	log.Debugf("found %s", util.Quantify(len(dominant), "dominant color", "dominant colors"))

	combined, err := palette.CurateDominant(curated, dominant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoColors, err)
	}

	params.progress(StageAnchors)
	candidates := lo.Map(dominant, func(value chroma.RGB, _ int) colorful.Color {
		return value.Colorful()
	})

	light, err := contrast.Light(candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoColors, err)
	}

	dark, err := contrast.Dark(candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoColors, err)
	}

	var background, foreground colorful.Color
	switch params.Variant {
	case VariantDark:
		background, foreground = contrast.FixDark(dark, light)
	case VariantLight:
		background, foreground = contrast.FixLight(dark, light)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSchemeVariant, params.Variant)
	}

	params.progress(StageAssemble)
	slots, err := assembleSlots(background, foreground, combined, params.System)
	if err != nil {
		return nil, err
	}

	scheme := &Scheme{
		System:      params.System,
		Name:        params.Name,
		Slug:        params.Slug,
		Author:      params.Author,
		Description: params.Description,
		Variant:     params.Variant,
		Palette:     slots,
	}

	log.Debugf("%s scheme %q assembled in %s", scheme.System, scheme.Slug, time.Since(started))

	return scheme, nil
}

func assembleSlots(
	background, foreground colorful.Color,
	combined palette.Palette,
	system System,
) (*SlotMap, error) {
	slots := NewSlotMap()

	gradient := Gradient(
		chroma.FromColorful(background),
		chroma.FromColorful(foreground),
		gradientSteps,
	)
	for index, step := range gradient {
		if err := slots.Put(fmt.Sprintf("base0%d", index), step.Hex()); err != nil {
			return nil, err
		}
	}

	type accent struct {
		slot  string
		muted string
		color chroma.Color
	}

	accents := make([]accent, 0, len(accentSlots))
	for _, mapping := range accentSlots {
		entry, ok := combined.Get(mapping.pure)
		if !ok {
			continue
		}

		boosted := entry.AddLightness(visibilityBoost(entry))
		accents = append(accents, accent{mapping.slot, mapping.muted, boosted})
	}

	for _, accent := range accents {
		if err := slots.Put(accent.slot, accent.color.Hex()); err != nil {
			return nil, err
		}
	}

	if system == Base24 {
		for _, accent := range accents {
			if err := slots.Put(accent.muted, accent.color.Saturate(0.7).Hex()); err != nil {
				return nil, err
			}
		}
	}

	return slots, nil
}

// visibilityBoost returns the lightness delta that keeps a dim accent
// readable: half the shortfall below the visibility threshold, zero for
// colors already above it.
func visibilityBoost(c chroma.Color) float64 {
	_, s, l := c.Value.Colorful().Hsl()
	visibility := 0.5*s + l

	return clamp01(accentVisibility-visibility) / 2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
