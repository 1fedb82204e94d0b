package conversation

import "go.uber.org/zap"

// RejectReason classifies why a record was excluded from the definition.
// Rejections are expected and silent; they are surfaced only through the
// Reporter.
type RejectReason string

const (
	ReasonDeletedBody     RejectReason = "deleted_body"
	ReasonBodyLength      RejectReason = "body_length"
	ReasonNoParent        RejectReason = "no_parent"
	ReasonParentLength    RejectReason = "parent_length"
	ReasonRenderedTooLong RejectReason = "rendered_too_long"
)

// Reporter observes pipeline progress. Implementations must not fail.
type Reporter interface {
	// Rejected is called once per excluded record.
	Rejected(rec Record, reason RejectReason)

	// Accepted is called once per run with the number of conversations
	// that survived filtering.
	Accepted(count int)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Rejected(Record, RejectReason) {}
func (NopReporter) Accepted(int)                  {}

// LogReporter reports pipeline events through a zap logger. Rejections
// are logged at debug level: they are routine, not errors.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter creates a Reporter backed by the given logger.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Rejected(rec Record, reason RejectReason) {
	r.logger.Debug("record rejected",
		zap.String("comment", rec.Fullname),
		zap.String("reason", string(reason)),
	)
}

func (r *LogReporter) Accepted(count int) {
	r.logger.Info("conversations extracted", zap.Int("count", count))
}
