package satchel

import (
	"time"

	"github.com/mkruglov/satchel/internal/clock"
)

// Measurement is one timing sample for a labeled code region.
type Measurement struct {
	Label   string
	Elapsed time.Duration
}

type MeasurementSink interface {
	Emit(m Measurement)
}

type SinkFunc func(m Measurement)

func (f SinkFunc) Emit(m Measurement) {
	f(m)
}

// LogSink emits measurements through a Logger.
func LogSink(log Logger) MeasurementSink {
	return SinkFunc(func(m Measurement) {
		log.Infof("%s: %s", m.Label, m.Elapsed)
	})
}

// Timer measures labeled regions. Every Measure and Start/stop pair
// emits exactly one Measurement, whatever the exit path.
type Timer struct {
	sink MeasurementSink
	clk  clock.Clock
}

func NewTimer(sink MeasurementSink) *Timer {
	return &Timer{sink: sink, clk: clock.System()}
}

// Measure runs fn and emits one measurement for it, also when fn
// returns an error or panics. A panic is re-raised after emission.
func (t *Timer) Measure(label string, fn func() error) error {
	start := t.clk.Now()

	defer func() {
		t.sink.Emit(Measurement{Label: label, Elapsed: t.clk.Now().Sub(start)})
	}()

	return fn()
}

// Start begins a measurement and returns the stop function that
// emits it, meant for defer.
func (t *Timer) Start(label string) (stop func()) {
	start := t.clk.Now()

	return func() {
		t.sink.Emit(Measurement{Label: label, Elapsed: t.clk.Now().Sub(start)})
	}
}
