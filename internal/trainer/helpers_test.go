package trainer

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/preflop-trainer/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func testClock(t *testing.T) *quartz.Mock {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC))
	return clock
}

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	return NewGenerator(quietLogger(), randutil.New(seed), WithClock(testClock(t)))
}
