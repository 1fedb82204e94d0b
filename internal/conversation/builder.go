package conversation

import (
	"context"

	"github.com/fyrsmithlabs/personagen/internal/config"
)

// Builder converts raw comment records into Conversations, applying the
// configured length filters. Records that fail any filter are dropped
// and reported; Build never returns an error.
type Builder struct {
	limits   config.GeneratorConfig
	reporter Reporter
}

// NewBuilder creates a Builder. A nil reporter means rejections are
// discarded silently.
func NewBuilder(limits config.GeneratorConfig, reporter Reporter) *Builder {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Builder{limits: limits, reporter: reporter}
}

// Build converts one record into a Conversation. The boolean reports
// whether the record survived filtering. Parent resolution failures
// reject the single record and are never propagated.
func (b *Builder) Build(ctx context.Context, rec Record, resolver ParentResolver) (Conversation, bool) {
	if rec.Body == "" || rec.Body == deletedBody || rec.Body == removedBody {
		b.reporter.Rejected(rec, ReasonDeletedBody)
		return Conversation{}, false
	}

	// Raw length is the filtering basis; sanitized length only matters
	// for the rendered form below.
	if len(rec.Body) < b.limits.MinCommentLength || len(rec.Body) > b.limits.MaxCommentLength {
		b.reporter.Rejected(rec, ReasonBodyLength)
		return Conversation{}, false
	}

	source, err := resolver.ResolveParent(ctx, rec)
	if err != nil {
		b.reporter.Rejected(rec, ReasonNoParent)
		return Conversation{}, false
	}

	parentText, ok := b.parentText(source)
	if !ok {
		b.reporter.Rejected(rec, ReasonNoParent)
		return Conversation{}, false
	}

	if parentText == "" || len(parentText) < b.limits.MinCommentLength || len(parentText) > b.limits.MaxCommentLength {
		b.reporter.Rejected(rec, ReasonParentLength)
		return Conversation{}, false
	}

	conv := New(parentText, rec.Body, rec.Score)

	// The raw lengths above bound the inputs, but the rendered block
	// carries speaker labels on top, so check the final form too.
	if len(Render(conv, Placeholder(1))) > b.limits.MaxSingleConversationLength {
		b.reporter.Rejected(rec, ReasonRenderedTooLong)
		return Conversation{}, false
	}

	return conv, true
}

// parentText flattens a resolved parent into the text the reply responds
// to. For a submission, the self-text is appended to the title only when
// it is itself short enough to quote in full.
func (b *Builder) parentText(source ParentSource) (string, bool) {
	switch p := source.(type) {
	case RootSubmission:
		text := p.Title
		if p.SelfText != "" && len(p.SelfText) < b.limits.MaxCommentLength {
			text += "\n" + p.SelfText
		}
		return text, true
	case ChildComment:
		if p.Body == "" {
			return "", false
		}
		return p.Body, true
	default:
		return "", false
	}
}
