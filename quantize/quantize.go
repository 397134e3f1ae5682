// Package quantize implements a deterministic modified-median-cut color
// quantizer over raw pixel bytes. Samples are filtered and binned into a
// 5-bit histogram, the histogram is cut into boxes along the longest axis at
// the population median, and each box yields the population-weighted mean of
// the true sample colors it holds, so degenerate inputs come back exact.
package quantize

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tinge-cli/tinge/chroma"
)

// PixelFormat describes the channel layout of the raw byte stream.
type PixelFormat int

const (
	RGB PixelFormat = iota
	RGBA
)

const (
	histogramBits = 5
	channelShift  = 8 - histogramBits
	channelMask   = (1 << histogramBits) - 1
	indexShift    = histogramBits * 2
	histogramSize = 1 << (histogramBits * 3)

	// Samples more transparent than this are ignored, as are samples where
	// every channel exceeds the near-white bound.
	minAlpha       = 125
	nearWhiteBound = 250

	defaultMaxColors = 15
	maxBoxes         = 256
)

// ErrNoPixels is returned when no sample survives filtering, for example a
// fully transparent or uniformly near-white input.
var ErrNoPixels = errors.New("no quantizable pixels")

// Options tune sampling density and palette size.
type Options struct {
	// Quality is the sampling stride: every Quality-th pixel is inspected.
	// Values below 1 mean every pixel.
	Quality int

	// MaxColors caps the palette size. Zero means 15.
	MaxColors int
}

// Quantize reduces raw pixel bytes to at most MaxColors representative
// colors, ordered by population, most common first. The result is
// deterministic for identical input bytes.
func Quantize(pix []byte, format PixelFormat, opts Options) ([]chroma.RGB, error) {
	stride, err := format.stride()
	if err != nil {
		return nil, err
	}

	quality := opts.Quality
	if quality < 1 {
		quality = 1
	}

	maxColors := opts.MaxColors
	if maxColors <= 0 {
		maxColors = defaultMaxColors
	}
	if maxColors > maxBoxes {
		maxColors = maxBoxes
	}

	bins, err := buildBins(pix, format, stride, quality)
	if err != nil {
		return nil, err
	}

	return averages(buildBoxes(bins, maxColors)), nil
}

func (f PixelFormat) stride() (int, error) {
	switch f {
	case RGB:
		return 3, nil
	case RGBA:
		return 4, nil
	default:
		return 0, fmt.Errorf("unknown pixel format %d", int(f))
	}
}

// bin is one occupied cell of the quantized histogram. The channel sums are
// over the original sample values, not the cell center.
type bin struct {
	rq, gq, bq       uint8
	rSum, gSum, bSum int
	count            int
}

func buildBins(pix []byte, format PixelFormat, stride, quality int) ([]bin, error) {
	counts := make([]int, histogramSize)
	rSums := make([]int, histogramSize)
	gSums := make([]int, histogramSize)
	bSums := make([]int, histogramSize)

	pixelCount := len(pix) / stride
	for i := 0; i < pixelCount; i += quality {
		offset := i * stride
		r := pix[offset]
		g := pix[offset+1]
		b := pix[offset+2]

		if format == RGBA && pix[offset+3] < minAlpha {
			continue
		}
		if r > nearWhiteBound && g > nearWhiteBound && b > nearWhiteBound {
			continue
		}

		rq := (int(r) >> channelShift) & channelMask
		gq := (int(g) >> channelShift) & channelMask
		bq := (int(b) >> channelShift) & channelMask
		index := (rq << indexShift) | (gq << histogramBits) | bq

		counts[index]++
		rSums[index] += int(r)
		gSums[index] += int(g)
		bSums[index] += int(b)
	}

	bins := make([]bin, 0, 64)
	for index, count := range counts {
		if count == 0 {
			continue
		}

		bins = append(bins, bin{
			rq:    uint8((index >> indexShift) & channelMask),
			gq:    uint8((index >> histogramBits) & channelMask),
			bq:    uint8(index & channelMask),
			rSum:  rSums[index],
			gSum:  gSums[index],
			bSum:  bSums[index],
			count: count,
		})
	}

	if len(bins) == 0 {
		return nil, ErrNoPixels
	}

	return bins, nil
}

type box struct {
	bins       []bin
	population int
	volume     int
	rMin, rMax uint8
	gMin, gMax uint8
	bMin, bMax uint8
}

func newBox(bins []bin) box {
	b := box{bins: bins}
	if len(bins) == 0 {
		return b
	}

	b.rMin, b.rMax = bins[0].rq, bins[0].rq
	b.gMin, b.gMax = bins[0].gq, bins[0].gq
	b.bMin, b.bMax = bins[0].bq, bins[0].bq

	for _, cell := range bins {
		b.population += cell.count
		b.rMin = minUint8(b.rMin, cell.rq)
		b.rMax = maxUint8(b.rMax, cell.rq)
		b.gMin = minUint8(b.gMin, cell.gq)
		b.gMax = maxUint8(b.gMax, cell.gq)
		b.bMin = minUint8(b.bMin, cell.bq)
		b.bMax = maxUint8(b.bMax, cell.bq)
	}

	b.volume = int(b.rMax-b.rMin+1) * int(b.gMax-b.gMin+1) * int(b.bMax-b.bMin+1)
	return b
}

func (b box) canSplit() bool {
	return len(b.bins) > 1 && (b.rMax > b.rMin || b.gMax > b.gMin || b.bMax > b.bMin)
}

// buildBoxes cuts the histogram into up to targetCount boxes, always
// splitting the box with the highest population * log(volume+1) score first.
func buildBoxes(bins []bin, targetCount int) []box {
	if len(bins) == 0 {
		return nil
	}

	boxes := []box{newBox(bins)}
	for len(boxes) < targetCount {
		splittable := make([]int, 0, len(boxes))
		for index, b := range boxes {
			if b.canSplit() {
				splittable = append(splittable, index)
			}
		}
		if len(splittable) == 0 {
			break
		}

		sort.SliceStable(splittable, func(i, j int) bool {
			return boxScore(boxes[splittable[i]]) > boxScore(boxes[splittable[j]])
		})

		split := false
		for _, index := range splittable {
			left, right, ok := splitBox(boxes[index])
			if !ok {
				continue
			}

			boxes[index] = boxes[len(boxes)-1]
			boxes = boxes[:len(boxes)-1]
			boxes = append(boxes, left, right)
			split = true
			break
		}
		if !split {
			break
		}
	}

	return boxes
}

func boxScore(b box) float64 {
	return float64(b.population) * math.Log(float64(b.volume)+1)
}

// splitBox cuts along the longest axis at the bin where the cumulative
// population reaches half the box's total.
func splitBox(b box) (box, box, bool) {
	if !b.canSplit() {
		return box{}, box{}, false
	}

	axis := longestAxis(b)
	ordered := append([]bin(nil), b.bins...)
	sort.SliceStable(ordered, func(i, j int) bool {
		left := axisValue(ordered[i], axis)
		right := axisValue(ordered[j], axis)
		if left == right {
			return ordered[i].count > ordered[j].count
		}
		return left < right
	})

	targetPopulation := b.population / 2
	cumulative := 0
	splitIndex := -1
	for index, cell := range ordered {
		cumulative += cell.count
		if cumulative >= targetPopulation {
			splitIndex = index + 1
			break
		}
	}

	if splitIndex <= 0 || splitIndex >= len(ordered) {
		splitIndex = len(ordered) / 2
	}
	if splitIndex <= 0 || splitIndex >= len(ordered) {
		return box{}, box{}, false
	}

	left := newBox(append([]bin(nil), ordered[:splitIndex]...))
	right := newBox(append([]bin(nil), ordered[splitIndex:]...))
	if left.population == 0 || right.population == 0 {
		return box{}, box{}, false
	}

	return left, right, true
}

func longestAxis(b box) int {
	rRange := b.rMax - b.rMin
	gRange := b.gMax - b.gMin
	bRange := b.bMax - b.bMin

	if rRange >= gRange && rRange >= bRange {
		return 0
	}
	if gRange >= rRange && gRange >= bRange {
		return 1
	}
	return 2
}

func axisValue(cell bin, axis int) uint8 {
	switch axis {
	case 0:
		return cell.rq
	case 1:
		return cell.gq
	default:
		return cell.bq
	}
}

func averages(boxes []box) []chroma.RGB {
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].population > boxes[j].population
	})

	colors := make([]chroma.RGB, 0, len(boxes))
	for _, b := range boxes {
		if b.population <= 0 {
			continue
		}

		var rSum, gSum, bSum int
		for _, cell := range b.bins {
			rSum += cell.rSum
			gSum += cell.gSum
			bSum += cell.bSum
		}

		colors = append(colors, chroma.RGB{
			R: uint8(rSum / b.population),
			G: uint8(gSum / b.population),
			B: uint8(bSum / b.population),
		})
	}

	return colors
}

func minUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxUint8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
