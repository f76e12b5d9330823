// Package prng implements the 48-bit linear congruential generator that feeds
// every effect. It mirrors the classic multiply-add-mask recurrence, so a fixed
// seed always produces the same sequence of draws.
package prng

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sync/atomic"
	"time"
)

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1

	uniquifierStart = 8682522807148012
	uniquifierStep  = 1181783497276652981
)

// ErrInvalidArgument is wrapped by the panic value of any draw called with an
// empty bound or range. Such calls are programming errors.
var ErrInvalidArgument = errors.New("prng: invalid argument")

// uniquifier keeps time-based seeds distinct within one clock tick.
var uniquifier atomic.Uint64

func init() {
	uniquifier.Store(uniquifierStart)
}

func nextUniquifier() uint64 {
	for {
		cur := uniquifier.Load()
		next := cur * uniquifierStep
		if uniquifier.CompareAndSwap(cur, next) {
			return next
		}
	}
}

func scramble(seed uint64) uint64 {
	return (seed ^ multiplier) & mask
}

// Random is a deterministic pseudo-random source. The zero value is usable and
// behaves as if seeded with 0 before scrambling. Not safe for concurrent use.
type Random struct {
	seed uint64
}

// New returns a generator seeded from the clock and a process-unique counter.
func New() *Random {
	r := &Random{}
	r.Reseed()
	return r
}

// NewSeeded returns a generator in the state Seed(seed) produces.
func NewSeeded(seed int64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed sets the state from a caller-supplied value.
func (r *Random) Seed(seed int64) {
	r.seed = scramble(uint64(seed))
}

// Reseed replaces the state with a fresh time-based value. Two calls never
// yield the same state even inside the same clock tick.
func (r *Random) Reseed() {
	r.seed = scramble(nextUniquifier() ^ uint64(time.Now().UnixNano()))
}

// Next advances the state and returns its top bits bits. bits must be in [1, 32].
func (r *Random) Next(bits int) uint32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Errorf("%w: bit count %d outside [1, 32]", ErrInvalidArgument, bits))
	}
	r.seed = (r.seed*multiplier + addend) & mask
	return uint32(r.seed >> (48 - bits))
}

// Int32 returns 32 random bits as a signed integer.
func (r *Random) Int32() int32 {
	return int32(r.Next(32))
}

// Intn returns a uniform value in [0, bound). It panics if bound is not in (0, 2^31).
func (r *Random) Intn(bound int) int {
	if bound <= 0 || bound > math.MaxInt32 {
		panic(fmt.Errorf("%w: bound %d must be positive and fit in 31 bits", ErrInvalidArgument, bound))
	}

	n := int32(bound)
	m := n - 1
	if n&m == 0 {
		return int((int64(n) * int64(r.Next(31))) >> 31)
	}

	// Redraw while the bucket containing u is cut short by 2^31; u-v+m wraps
	// negative exactly then.
	u := int32(r.Next(31))
	v := u % n
	for u-v+m < 0 {
		u = int32(r.Next(31))
		v = u % n
	}
	return int(v)
}

// Float returns a value in [0, 1) built from 26 random bits.
func (r *Random) Float() float64 {
	return float64(r.Next(26)) / (1 << 26)
}

// Floatn returns a value in [0, bound). It panics unless bound is positive and finite.
func (r *Random) Floatn(bound float64) float64 {
	if !(bound > 0) || math.IsInf(bound, 1) {
		panic(fmt.Errorf("%w: float bound %v must be positive and finite", ErrInvalidArgument, bound))
	}

	// Normal powers of two never redraw.
	v := r.Float() * bound
	for v >= bound {
		v = r.Float() * bound
	}
	return v
}

// IntRange returns a value in [min, max], both inclusive. It panics if min >= max.
func (r *Random) IntRange(min, max int) int {
	if min >= max {
		panic(fmt.Errorf("%w: empty int range [%d, %d]", ErrInvalidArgument, min, max))
	}
	return r.Intn(max-min+1) + min
}

// FloatRange returns a value in [lo, hi). It panics if lo >= hi.
func (r *Random) FloatRange(lo, hi float64) float64 {
	if !(lo < hi) {
		panic(fmt.Errorf("%w: empty float range [%v, %v)", ErrInvalidArgument, lo, hi))
	}
	return lo + r.Floatn(hi-lo)
}

// Color draws a non-premultiplied color, one IntRange(0, 255) per channel in R, G, B, A order.
func (r *Random) Color() color.NRGBA {
	red := uint8(r.IntRange(0, 255))
	green := uint8(r.IntRange(0, 255))
	blue := uint8(r.IntRange(0, 255))
	alpha := uint8(r.IntRange(0, 255))
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}
