package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkruglov/satchel/internal/clock"
)

func TestManual_Advance(t *testing.T) {
	start := time.Unix(1000, 0)
	manual := clock.NewManual(start)

	assert.Equal(t, start, manual.Now())

	manual.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), manual.Now())
}

func TestManual_After(t *testing.T) {
	manual := clock.NewManual(time.Unix(0, 0))

	ch := manual.After(10 * time.Second)
	select {
	case <-ch:
		t.Fatal("fired before the deadline")
	default:
	}

	manual.Advance(9 * time.Second)
	select {
	case <-ch:
		t.Fatal("fired before the deadline")
	default:
	}

	manual.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("did not fire at the deadline")
	}
}

func TestManual_AfterNonPositive(t *testing.T) {
	manual := clock.NewManual(time.Unix(0, 0))

	select {
	case <-manual.After(0):
	default:
		t.Fatal("zero duration must fire immediately")
	}
}

func TestSystem(t *testing.T) {
	sys := clock.System()

	before := time.Now()
	now := sys.Now()
	require.False(t, now.Before(before.Add(-time.Second)))

	select {
	case <-sys.After(time.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("system After did not fire")
	}
}
