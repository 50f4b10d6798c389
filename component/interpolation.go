package component

import (
	"time"

	"github.com/Bastczuak/bytepath/vmath"
)

// BeginEnd is one tweened value pair
type BeginEnd struct {
	Begin, End float64
}

// Interpolation tweens a set of begin/end pairs over a duration through an
// easing curve. It drives every animated scalar in the game: trail shrink,
// tick pulses, capture grow, shoot-effect scale, line particle length
type Interpolation struct {
	Time      time.Duration
	Duration  time.Duration
	BeginEnd  []BeginEnd
	Easing    vmath.Easing
	Repeating bool
}

// NewInterpolation builds a tween over duration with the given easing and pairs
func NewInterpolation(duration time.Duration, easing vmath.Easing, repeating bool, pairs ...BeginEnd) Interpolation {
	return Interpolation{
		Duration:  duration,
		BeginEnd:  pairs,
		Easing:    easing,
		Repeating: repeating,
	}
}

// Eval advances the tween by delta and returns the blended values.
// Finished is reported exactly on the step where Time first reaches the
// duration; a repeating tween resets to zero on that same step so the next
// call restarts the cycle. A non-positive duration is instantly finished
// and yields the end values
func (i *Interpolation) Eval(delta time.Duration) (values []float64, finished bool) {
	values = make([]float64, len(i.BeginEnd))
	finished = i.EvalInto(delta, values)
	return values, finished
}

// EvalInto is Eval writing into a caller-owned slice, sized len(BeginEnd),
// to keep per-tick effect updates allocation free
func (i *Interpolation) EvalInto(delta time.Duration, values []float64) (finished bool) {
	if i.Duration <= 0 {
		for n, pair := range i.BeginEnd {
			values[n] = pair.End
		}
		return true
	}

	wasFinished := i.Time >= i.Duration
	i.Time += delta

	ratio := vmath.Clamp(i.Time.Seconds()/i.Duration.Seconds(), 0, 1)
	t := i.Easing.At(ratio)
	for n, pair := range i.BeginEnd {
		values[n] = vmath.Lerp(pair.Begin, pair.End, t)
	}

	finished = !wasFinished && i.Time >= i.Duration
	if finished && i.Repeating {
		i.Time = 0
	}
	return finished
}
