package llm

import (
	"fmt"
	"io"
	"time"
)

// maxDetailBytes caps the diagnostic payload written per event.
const maxDetailBytes = 4096

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
	Detail    string // raw envelope for malformed responses
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s",
		ts, event.Task, event.Model, event.LatencyMs, status)
	if event.Detail != "" {
		detail := event.Detail
		if len(detail) > maxDetailBytes {
			detail = detail[:maxDetailBytes] + "...(truncated)"
		}
		fmt.Fprintf(o.w, " detail=%q", detail)
	}
	fmt.Fprintln(o.w)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// RecordingObserver keeps every event in memory. Useful for tests.
type RecordingObserver struct {
	Events []LLMCallEvent
}

func (r *RecordingObserver) OnCallComplete(e LLMCallEvent) {
	r.Events = append(r.Events, e)
}
