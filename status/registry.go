package status

import (
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
)

// Registry holds the simulation's published metrics by kind
// The world writes through cached cells; the HUD and the headless summary read them
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot reads every metric into log attributes ordered by key
func (r *Registry) Snapshot() []slog.Attr {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { attrs = append(attrs, slog.Bool(k, v.Load())) })
	r.Ints.Range(func(k string, v *atomic.Int64) { attrs = append(attrs, slog.Int64(k, v.Load())) })
	r.Floats.Range(func(k string, v *AtomicFloat) { attrs = append(attrs, slog.Float64(k, v.Get())) })
	r.Strings.Range(func(k string, v *AtomicString) { attrs = append(attrs, slog.String(k, v.Load())) })
	slices.SortFunc(attrs, func(a, b slog.Attr) int { return strings.Compare(a.Key, b.Key) })
	return attrs
}
