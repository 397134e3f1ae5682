// Package palette derives the per-anchor hue palette of an image: a parallel
// nearest-anchor scan over the pixels followed by two curation stages that
// reconcile the scan with the image's dominant colors.
package palette

import (
	"image"
	"image/draw"
	"math"
	"runtime"
	"sync"

	"github.com/samber/lo"
	"github.com/tinge-cli/tinge/chroma"
)

// Workers above this see no benefit; the scan is memory bound.
const maxScanWorkers = 8

// Palette is an ordered set of matched colors, at most one per hue anchor.
type Palette []chroma.Color

// Get returns the entry tagged with the given anchor.
func (p Palette) Get(pure chroma.PureColor) (chroma.Color, bool) {
	return lo.Find(p, func(c chroma.Color) bool {
		return c.Pure == pure
	})
}

// Scan runs twelve independent nearest-anchor searches in one pass over the
// image, keeping per anchor the pixel color with the smallest squared distance
// to its canonical value. Alpha is ignored. Ties resolve to the first pixel in
// row-major order: rows are partitioned across workers and the per-worker
// minima merged in ascending row order, both with strict comparisons, which
// reproduces a sequential scan exactly. An image with no pixels yields the
// canonical anchor colors themselves.
func Scan(img image.Image, workers int) Palette {
	nrgba := toNRGBA(img)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = clampInt(workers, 1, maxScanWorkers)
	workers = clampInt(workers, 1, maxInt(height, 1))

	states := make([]*scanState, workers)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		startY, endY := splitRange(height, workers, worker)
		wg.Add(1)
		go func(workerIndex, start, end int) {
			defer wg.Done()
			state := newScanState()

			for y := start; y < end; y++ {
				rowOffset := y * nrgba.Stride
				for x := 0; x < width; x++ {
					offset := rowOffset + x*4
					value := chroma.RGB{
						R: nrgba.Pix[offset],
						G: nrgba.Pix[offset+1],
						B: nrgba.Pix[offset+2],
					}

					for i, anchor := range chroma.PureColors {
						distance := chroma.Distance(anchor.RGB(), value)
						if distance < state.best[i] {
							state.best[i] = distance
							state.winners[i] = chroma.Color{
								Pure:     anchor,
								Value:    value,
								Distance: distance,
							}
						}
					}
				}
			}

			states[workerIndex] = state
		}(worker, startY, endY)
	}
	wg.Wait()

	merged := newScanState()
	for _, state := range states {
		for i := range merged.winners {
			if state.best[i] < merged.best[i] {
				merged.best[i] = state.best[i]
				merged.winners[i] = state.winners[i]
			}
		}
	}

	return Palette(merged.winners[:])
}

type scanState struct {
	winners [len(chroma.PureColors)]chroma.Color
	best    [len(chroma.PureColors)]int
}

func newScanState() *scanState {
	state := &scanState{}
	for i, anchor := range chroma.PureColors {
		state.winners[i] = chroma.From(anchor)
		state.best[i] = math.MaxInt
	}
	return state
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

func splitRange(length int, workers int, workerIndex int) (int, int) {
	chunkSize := length / workers
	remainder := length % workers
	start := workerIndex*chunkSize + minInt(workerIndex, remainder)
	end := start + chunkSize
	if workerIndex < remainder {
		end++
	}
	return start, end
}

func clampInt(value int, minimum int, maximum int) int {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}

func minInt(left int, right int) int {
	if left < right {
		return left
	}
	return right
}

func maxInt(left int, right int) int {
	if left > right {
		return left
	}
	return right
}
