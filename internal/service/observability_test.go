package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "dashboard",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"visit_count": 3},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=dashboard")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "visit_count=3")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-visit", Err: errors.New("boom")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestObserve_CapturesNamedError(t *testing.T) {
	rec := &recordingObserver{}
	run := func() (err error) {
		defer observe(context.Background(), rec, "op", time.Now(), &err, map[string]any{"k": "v"})
		return errors.New("late failure")
	}
	_ = run()

	if assert.Len(t, rec.events, 1) {
		assert.Equal(t, "op", rec.events[0].Name)
		assert.False(t, rec.events[0].Success)
		assert.EqualError(t, rec.events[0].Err, "late failure")
		assert.Equal(t, "v", rec.events[0].Fields["k"])
	}
}
