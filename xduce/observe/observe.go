// Package observe provides pass-through transducers for inspecting and
// measuring traversals without altering the data flow: a callback tap
// and OpenTelemetry metric instrumentation.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-xduce/xduce/core"
)

// Instruments bundles the OpenTelemetry instruments recorded by Meter.
type Instruments struct {
	// Items counts every item stepped through the transducer.
	Items metric.Int64Counter
	// Stops counts traversals terminated early by a Reduced signal.
	Stops metric.Int64Counter
	// Duration records the wall time of each traversal in seconds,
	// measured from state creation to completion.
	Duration metric.Float64Histogram
}

// NewInstruments creates the standard instrument set on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	items, err := meter.Int64Counter("xduce.items",
		metric.WithDescription("count of items stepped"))
	if err != nil {
		return nil, err
	}
	stops, err := meter.Int64Counter("xduce.early_stops",
		metric.WithDescription("count of traversals terminated early"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("xduce.traversal_seconds",
		metric.WithDescription("traversal wall time in seconds"))
	if err != nil {
		return nil, err
	}
	return &Instruments{Items: items, Stops: stops, Duration: duration}, nil
}

// Meter returns a pass-through transducer that records every stepped
// item, early stop, and traversal duration on the given instruments.
// The context is captured at construction time because the traversal
// itself carries none; pass the context the surrounding operation runs
// under.
func Meter[S, A, R any](ctx context.Context, inst *Instruments) core.Transducer[S, core.Paired[S, time.Time], A, A, R] {
	return core.TransducerFunc[S, core.Paired[S, time.Time], A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[core.Paired[S, time.Time], A, R] {
		return meterReducer[S, A, R]{inner: inner, ctx: ctx, inst: inst}
	})
}

type meterReducer[S, A, R any] struct {
	inner core.Reducer[S, A, R]
	ctx   context.Context
	inst  *Instruments
}

func (m meterReducer[S, A, R]) InitialState() core.Paired[S, time.Time] {
	return core.Paired[S, time.Time]{Inner: m.inner.InitialState(), Extra: time.Now()}
}

func (m meterReducer[S, A, R]) Identity() R { return m.inner.Identity() }

func (m meterReducer[S, A, R]) StepL(state core.Paired[S, time.Time], acc R, item A) (core.Paired[S, time.Time], core.Reduction[R]) {
	inner, sig := m.inner.StepL(state.Inner, acc, item)
	state.Inner = inner
	m.observe(sig)
	return state, sig
}

func (m meterReducer[S, A, R]) StepR(state core.Paired[S, time.Time], item A, rest core.Reduction[R]) (core.Paired[S, time.Time], core.Reduction[R]) {
	inner, sig := m.inner.StepR(state.Inner, item, rest)
	state.Inner = inner
	m.observe(sig)
	return state, sig
}

func (m meterReducer[S, A, R]) Completion(state core.Paired[S, time.Time], result R) R {
	m.inst.Duration.Record(m.ctx, time.Since(state.Extra).Seconds())
	return m.inner.Completion(state.Inner, result)
}

func (m meterReducer[S, A, R]) observe(sig core.Reduction[R]) {
	m.inst.Items.Add(m.ctx, 1)
	if sig.IsReduced() {
		m.inst.Stops.Add(m.ctx, 1)
	}
}

// Tap returns a pass-through transducer that invokes fn for every item
// stepped through it, before the inner reducer sees the item. The
// callback must not retain or mutate shared state unless it is safe to
// do so.
func Tap[S, A, R any](fn func(A)) core.Transducer[S, S, A, A, R] {
	return core.TransducerFunc[S, S, A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[S, A, R] {
		return tapReducer[S, A, R]{inner: inner, fn: fn}
	})
}

type tapReducer[S, A, R any] struct {
	inner core.Reducer[S, A, R]
	fn    func(A)
}

func (t tapReducer[S, A, R]) InitialState() S { return t.inner.InitialState() }

func (t tapReducer[S, A, R]) Identity() R { return t.inner.Identity() }

func (t tapReducer[S, A, R]) StepL(state S, acc R, item A) (S, core.Reduction[R]) {
	t.fn(item)
	return t.inner.StepL(state, acc, item)
}

func (t tapReducer[S, A, R]) StepR(state S, item A, rest core.Reduction[R]) (S, core.Reduction[R]) {
	t.fn(item)
	return t.inner.StepR(state, item, rest)
}

func (t tapReducer[S, A, R]) Completion(state S, result R) R {
	return t.inner.Completion(state, result)
}
