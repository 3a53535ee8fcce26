package shatter

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrAnimation is returned by Animate for invalid frame settings.
var ErrAnimation = errors.New("shatter: invalid animation")

// Animation configures Animate.
type Animation struct {
	Frames  int            // at least 2
	Ease    ease.TweenFunc // nil means ease.OutCubic
	Stagger float64        // share of the timeline spent waiting, in [0, 1)
}

// DefaultAnimation returns 24 frames eased with OutCubic and a 0.4 stagger.
func DefaultAnimation() Animation {
	return Animation{Frames: 24, Ease: ease.OutCubic, Stagger: 0.4}
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inoutquad":  ease.InOutQuad,
	"inoutcubic": ease.InOutCubic,
	"inoutsine":  ease.InOutSine,
	"outcubic":   ease.OutCubic,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// EaseByName looks up an easing function by name. Names are matched
// case-insensitively, ignoring '-' and '_', so "out-cubic" and "OutCubic"
// are the same.
func EaseByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	fn, ok := easings[key]
	return fn, ok
}

// EaseNames returns the names accepted by EaseByName.
func EaseNames() []string {
	return []string{"linear", "in-out-quad", "in-out-cubic", "in-out-sine", "out-cubic", "out-bounce", "out-elastic"}
}

// Animate renders blocks returned by a previous Apply travelling from
// their source cells to their displaced positions. Every frame starts from
// a copy of base with region cleared to the renderer's background. Blocks
// with higher intensity start earlier. A block's progress drives its
// position, rotation, size and depth shading together. The first frame is
// the undisplaced block mosaic and the last matches the still effect.
func (r *Renderer) Animate(base *Pixmap, region image.Rectangle, blocks []Block, a Animation) ([]*Pixmap, error) {
	if base == nil {
		return nil, ErrNoImage
	}
	if a.Frames < 2 {
		return nil, fmt.Errorf("%w: %d frames, need at least 2", ErrAnimation, a.Frames)
	}
	if !(a.Stagger >= 0 && a.Stagger < 1) {
		return nil, fmt.Errorf("%w: stagger %v outside [0, 1)", ErrAnimation, a.Stagger)
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.OutCubic
	}
	region = region.Intersect(base.Bounds())

	duration := float32(1 - a.Stagger)
	moving := make([]movingBlock, len(blocks))
	frames := make([]*Pixmap, a.Frames)
	for i := range frames {
		t := float64(i) / float64(a.Frames-1)
		for j, b := range blocks {
			delay := a.Stagger * (1 - b.Intensity)
			// A fresh tween per frame keeps frames independent of each other.
			v, _ := gween.New(0, 1, duration, fn).Update(float32(t - delay))
			moving[j] = movingBlock{block: b, progress: float64(v)}
		}
		// Depth grows with progress, so the paint order changes over time.
		sortMoving(moving)

		f := base.Clone()
		f.ClearRect(region, r.opts.background)
		for _, m := range moving {
			b, p := m.block, m.progress
			drawBlock(f, b,
				b.Origin().Lerp(b.Center(), p),
				b.Rotation*p,
				(1-p)+b.SizeVariation*p,
				b.Depth*p,
				region, r.opts.shading)
		}
		frames[i] = f
	}
	Logger().Debug("shatter: animation rendered", "frames", a.Frames, "blocks", len(blocks))
	return frames, nil
}

type movingBlock struct {
	block    Block
	progress float64
}

func sortMoving(m []movingBlock) {
	slices.SortStableFunc(m, func(a, b movingBlock) int {
		return cmp.Compare(b.block.Depth*b.progress, a.block.Depth*a.progress)
	})
}
