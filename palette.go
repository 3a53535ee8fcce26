package shatter

import (
	"cmp"
	"math"
	"slices"
)

// Palette holds the colors sampled from the visible, non-dark pixels of an
// image. Its order follows the scan order of the image, row by row.
type Palette []ColorSample

// SamplePalette scans every pixel of src once and collects those whose alpha
// is above th.Alpha and which are not near-black.
func SamplePalette(src *Pixmap, th Thresholds) Palette {
	var pal Palette
	data := src.Data()
	for i := 0; i+3 < len(data); i += 4 {
		r, g, b, a := data[i], data[i+1], data[i+2], data[i+3]
		if a > th.Alpha && !th.NearBlack(r, g, b) {
			pal = append(pal, ColorSample{R: r, G: g, B: b})
		}
	}
	return pal
}

// Pick returns the sample selected by u in [0, 1), or fallback when the
// palette is empty.
func (p Palette) Pick(u float64, fallback ColorSample) ColorSample {
	if len(p) == 0 {
		return fallback
	}
	i := int(math.Floor(u * float64(len(p))))
	return p[min(max(i, 0), len(p)-1)]
}

// Dominant returns up to n distinct samples ordered by how often they occur,
// most frequent first, with their counts. Ties keep first-seen order.
func (p Palette) Dominant(n int) ([]ColorSample, []int) {
	counts := make(map[ColorSample]int)
	var order []ColorSample
	for _, c := range p {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	slices.SortStableFunc(order, func(a, b ColorSample) int { return cmp.Compare(counts[b], counts[a]) })
	if n >= 0 && len(order) > n {
		order = order[:n]
	}
	freq := make([]int, len(order))
	for i, c := range order {
		freq[i] = counts[c]
	}
	return order, freq
}
