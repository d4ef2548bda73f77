package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 through its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }
func (f *AtomicFloat) Get() float64    { return math.Float64frombits(f.bits.Load()) }

// AtomicString is a lock-free string cell, truncated to MaxStringLen bytes
type AtomicString struct {
	ptr atomic.Pointer[string]
}

const MaxStringLen = 40

func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
