// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ease resolves easing names to gween curves and samples them into
// keyframes for declarative animations.
package ease

import (
	"slices"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Func is an easing curve in the Penner (t, begin, change, duration) form.
type Func = ease.TweenFunc

// DefaultSteps is the keyframe count used when the caller passes zero.
const DefaultSteps = 10

var curves = map[string]Func{
	"linear": ease.Linear,

	"in-quad": ease.InQuad, "out-quad": ease.OutQuad, "in-out-quad": ease.InOutQuad, "out-in-quad": ease.OutInQuad,
	"in-cubic": ease.InCubic, "out-cubic": ease.OutCubic, "in-out-cubic": ease.InOutCubic, "out-in-cubic": ease.OutInCubic,
	"in-quart": ease.InQuart, "out-quart": ease.OutQuart, "in-out-quart": ease.InOutQuart, "out-in-quart": ease.OutInQuart,
	"in-quint": ease.InQuint, "out-quint": ease.OutQuint, "in-out-quint": ease.InOutQuint, "out-in-quint": ease.OutInQuint,
	"in-sine": ease.InSine, "out-sine": ease.OutSine, "in-out-sine": ease.InOutSine, "out-in-sine": ease.OutInSine,
	"in-expo": ease.InExpo, "out-expo": ease.OutExpo, "in-out-expo": ease.InOutExpo, "out-in-expo": ease.OutInExpo,
	"in-circ": ease.InCirc, "out-circ": ease.OutCirc, "in-out-circ": ease.InOutCirc, "out-in-circ": ease.OutInCirc,
	"in-elastic": ease.InElastic, "out-elastic": ease.OutElastic, "in-out-elastic": ease.InOutElastic, "out-in-elastic": ease.OutInElastic,
	"in-back": ease.InBack, "out-back": ease.OutBack, "in-out-back": ease.InOutBack, "out-in-back": ease.OutInBack,
	"in-bounce": ease.InBounce, "out-bounce": ease.OutBounce, "in-out-bounce": ease.InOutBounce, "out-in-bounce": ease.OutInBounce,
}

// CSS timing keywords, approximated by the closest polynomial curve.
var aliases = map[string]string{
	"ease":        "in-out-quad",
	"ease-in":     "in-quad",
	"ease-out":    "out-quad",
	"ease-in-out": "in-out-cubic",
}

// Lookup resolves an easing name. Names are case-insensitive and accept
// '_' or ' ' in place of '-'. The empty name is linear. The second result is
// false for unknown names, in which case the returned curve is linear.
func Lookup(name string) (Func, bool) {
	key := normalize(name)
	if key == "" {
		return ease.Linear, true
	}
	if a, ok := aliases[key]; ok {
		key = a
	}
	fn, ok := curves[key]
	if !ok {
		return ease.Linear, false
	}
	return fn, true
}

// Names returns every accepted name, aliases included, sorted.
func Names() []string {
	out := make([]string, 0, len(curves)+len(aliases))
	for k := range curves {
		out = append(out, k)
	}
	for k := range aliases {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func normalize(name string) string {
	return strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Sample returns steps+1 values of fn between from and to at evenly spaced
// times. The first value is from and the last is exactly to.
func Sample(fn Func, from, to float64, steps int) []float64 {
	if steps <= 0 {
		steps = DefaultSteps
	}
	if fn == nil {
		fn = ease.Linear
	}
	tween := gween.New(float32(from), float32(to), 1, fn)
	dt := 1 / float32(steps)

	out := make([]float64, steps+1)
	out[0] = from
	for i := 1; i < steps; i++ {
		v, _ := tween.Update(dt)
		out[i] = float64(v)
	}
	out[steps] = to
	return out
}

// KeyTimes returns steps+1 evenly spaced times in [0, 1] matching Sample.
func KeyTimes(steps int) []float64 {
	if steps <= 0 {
		steps = DefaultSteps
	}
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) / float64(steps)
	}
	return out
}
