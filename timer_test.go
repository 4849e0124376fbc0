package satchel

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkruglov/satchel/internal/clock"
)

func newTestTimer() (*Timer, *[]Measurement, *clock.Manual) {
	var captured []Measurement

	manual := clock.NewManual(time.Unix(0, 0))
	tm := NewTimer(SinkFunc(func(m Measurement) {
		captured = append(captured, m)
	}))
	tm.clk = manual

	return tm, &captured, manual
}

func TestTimer_Measure(t *testing.T) {
	t.Run("emits exactly one measurement on success", func(t *testing.T) {
		tm, captured, manual := newTestTimer()

		err := tm.Measure("load", func() error {
			manual.Advance(50 * time.Millisecond)
			return nil
		})

		require.NoError(t, err)
		require.Len(t, *captured, 1)
		assert.Equal(t, "load", (*captured)[0].Label)
		assert.Equal(t, 50*time.Millisecond, (*captured)[0].Elapsed)
	})

	t.Run("emits on error and returns it unchanged", func(t *testing.T) {
		tm, captured, manual := newTestTimer()
		boom := errors.New("boom")

		err := tm.Measure("failing", func() error {
			manual.Advance(time.Second)
			return boom
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
		require.Len(t, *captured, 1)
		assert.Equal(t, time.Second, (*captured)[0].Elapsed)
	})

	t.Run("emits on panic before re-raising", func(t *testing.T) {
		tm, captured, _ := newTestTimer()

		require.Panics(t, func() {
			_ = tm.Measure("panicking", func() error {
				panic("kaboom")
			})
		})

		require.Len(t, *captured, 1)
		assert.Equal(t, "panicking", (*captured)[0].Label)
	})

	t.Run("one measurement per invocation", func(t *testing.T) {
		tm, captured, _ := newTestTimer()

		for i := 0; i < 3; i++ {
			_ = tm.Measure("repeated", func() error { return nil })
		}

		assert.Len(t, *captured, 3)
	})
}

func TestTimer_Start(t *testing.T) {
	tm, captured, manual := newTestTimer()

	stop := tm.Start("scoped")
	manual.Advance(7 * time.Millisecond)
	stop()

	require.Len(t, *captured, 1)
	assert.Equal(t, "scoped", (*captured)[0].Label)
	assert.Equal(t, 7*time.Millisecond, (*captured)[0].Elapsed)
}
