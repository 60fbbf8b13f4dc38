package slowlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSlowLog(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should measure breakpoints", func(t *testing.T) {
		tests := []struct {
			name          string
			logic         func(slowLog Logger) []time.Duration
			expectedTimes []time.Duration
		}{
			{
				name: "single breakpoint",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("build")
					time.Sleep(1 * time.Millisecond)
					return []time.Duration{slowLog.Stop("build")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "nested breakpoints",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("outer")
					time.Sleep(1 * time.Millisecond)

					slowLog.Start("inner")
					time.Sleep(1 * time.Millisecond)
					inner := slowLog.Stop("inner")

					time.Sleep(1 * time.Millisecond)
					outer := slowLog.Stop("outer")

					return []time.Duration{inner, outer}
				},
				expectedTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond},
			},
			{
				name: "restarted breakpoint",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("same")
					time.Sleep(3 * time.Millisecond)
					slowLog.Start("same")
					time.Sleep(1 * time.Millisecond)

					return []time.Duration{slowLog.Stop("same")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
		}

		slowLog := CreateLogger(&log)

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				times := test.logic(slowLog)
				assert.Empty(t, slowLog.running)
				for i, expectedTime := range test.expectedTimes {
					assert.GreaterOrEqual(t, times[i], expectedTime)
				}
			})
		}
	})

	t.Run("should ignore a breakpoint never started", func(t *testing.T) {
		out.Reset()
		slowLog := CreateLogger(&log)

		assert.Zero(t, slowLog.Stop("unknown"))
		assert.Zero(t, out.Len())
	})

	t.Run("should warn above the threshold", func(t *testing.T) {
		out.Reset()
		slowLog := CreateLoggerWithThreshold(&log, 0)

		stop := slowLog.Track("serialize")
		time.Sleep(1 * time.Millisecond)
		stop()

		assert.Contains(t, out.String(), `"level":"warn"`)
		assert.Contains(t, out.String(), `"breakpoint_name":"serialize"`)
		assert.Contains(t, out.String(), `"label":"slowlog"`)
		assert.Empty(t, slowLog.running)
	})
}
