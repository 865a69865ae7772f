package batch

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/tagex/model"
)

// StepEvent describes one step of a batch run.
type StepEvent struct {
	Step      string
	Timestamp time.Time
	Details   map[string]interface{}
}

// Summary describes a completed batch run. Elements maps result IDs
// to the ordered text elements each result's text was built from.
type Summary struct {
	StartTime time.Time
	EndTime   time.Time
	Documents int
	Tags      int
	Results   int
	Elements  map[string][]model.TextElement
}

// Duration returns the wall-clock time the batch took.
func (s Summary) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Recorder observes a batch run. Implementations must not retain or
// mutate the element slices they are handed. All methods are called
// from the single goroutine driving the batch.
type Recorder interface {
	OnStep(event StepEvent)
	OnComplete(summary Summary)
}

// NopRecorder discards all diagnostics. It is the default.
type NopRecorder struct{}

func (NopRecorder) OnStep(StepEvent)   {}
func (NopRecorder) OnComplete(Summary) {}

// CaptureRecorder retains every step event and the final summary so
// callers (and tests) can inspect a run after the fact.
type CaptureRecorder struct {
	Steps   []StepEvent
	Summary Summary
	Done    bool
}

// NewCaptureRecorder creates an empty capture recorder.
func NewCaptureRecorder() *CaptureRecorder {
	return &CaptureRecorder{}
}

func (r *CaptureRecorder) OnStep(event StepEvent) {
	r.Steps = append(r.Steps, event)
}

func (r *CaptureRecorder) OnComplete(summary Summary) {
	r.Summary = summary
	r.Done = true
}

// LogRecorder forwards diagnostics to a logrus logger: steps at debug
// level, the completion summary at info level.
type LogRecorder struct {
	logger *logrus.Logger
}

// NewLogRecorder creates a log recorder. A nil logger means the
// logrus standard logger.
func NewLogRecorder(logger *logrus.Logger) *LogRecorder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) OnStep(event StepEvent) {
	r.logger.WithFields(logrus.Fields(event.Details)).
		WithField("step", event.Step).
		Debug("extraction step")
}

func (r *LogRecorder) OnComplete(summary Summary) {
	r.logger.WithFields(logrus.Fields{
		"documents": summary.Documents,
		"tags":      summary.Tags,
		"results":   summary.Results,
		"duration":  summary.Duration().String(),
	}).Info("batch extraction complete")
}
