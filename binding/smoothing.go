package binding

import (
	"math"
	"time"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

const (
	historySize     = 10
	minSampleGap    = 900 * time.Microsecond
	smoothingWindow = 48 * time.Millisecond
)

type angularSample struct {
	at     time.Time
	sine   float64
	cosine float64
}

// angularFilter low-passes a wrapping angle by averaging recent samples in
// sine/cosine space, so values straddling 0/2π average to the short arc.
type angularFilter struct {
	history [historySize]angularSample
	cursor  int
	last    float64
}

func (f *angularFilter) smooth(rads float64, now time.Time) float64 {
	if now.Sub(f.history[f.cursor].at) < minSampleGap {
		return f.last
	}

	f.cursor = (f.cursor + 1) % historySize
	f.history[f.cursor] = angularSample{at: now, sine: math.Sin(rads), cosine: math.Cos(rads)}

	var sines, cosines float64
	for _, s := range f.history {
		age := now.Sub(s.at)
		if age < 0 {
			age = 0
		}
		// linear falloff: half weight at 24ms, none at 48ms
		weight := 1 - float64(age)/float64(smoothingWindow)
		if weight > 0 {
			sines += weight * s.sine
			cosines += weight * s.cosine
		}
	}

	if cosines == 0 {
		cosines = math.Nextafter(0, 1)
	}

	f.last = NormalizeAngle(math.Atan2(sines, cosines))
	return f.last
}

// angularIntegrator accumulates relative rotation scaled by a sensitivity.
type angularIntegrator struct {
	previous float64
	adjusted float64
}

func (g *angularIntegrator) apply(rads, sensitivity float64) float64 {
	delta := AngularDifference(g.previous, rads)
	g.previous = rads
	g.adjusted = NormalizeAngle(g.adjusted + delta*sensitivity)
	return g.adjusted
}

// SmoothedValue feeds a raw angle into the analog's smoothing history and
// returns the weighted circular mean of the last ~48ms.
func (a *Analog) SmoothedValue(rads float64, now time.Time) float64 {
	return a.filter.smooth(rads, now)
}

// ApplyAngularSensitivity advances the relative rotation tracker by the
// short-arc change since the previous call, scaled by the sensitivity.
func (a *Analog) ApplyAngularSensitivity(rads float64) float64 {
	return a.integrator.apply(rads, a.sensitivity)
}

// AngularDifference returns the signed change from prev to next, assuming
// the true rotation between the two never exceeds half a turn.
func AngularDifference(prev, next float64) float64 {
	delta := next - prev
	if math.Abs(delta) < math.Pi {
		return delta
	}
	if delta < 0 {
		return Tau + delta
	}
	return -(Tau - delta)
}

// NormalizeAngle maps rads into [0, 2π). Inputs are expected to be within
// a turn or two of that range.
func NormalizeAngle(rads float64) float64 {
	for rads >= Tau {
		rads -= Tau
	}
	for rads < 0 {
		rads += Tau
	}
	return rads
}
