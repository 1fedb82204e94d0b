package conversation

import "context"

// Deletion sentinels Reddit substitutes for removed comment bodies.
const (
	deletedBody = "[deleted]"
	removedBody = "[removed]"
)

// Conversation is a parent/reply exemplar pair. It is built once by the
// Builder and read-only afterwards.
type Conversation struct {
	// OriginalText is the parent content the reply responds to: a post
	// title (optionally with self-text) or a parent comment body.
	OriginalText string

	// ReplyText is the subject user's reply.
	ReplyText string

	// Score is the engagement score, clamped to be non-negative.
	Score int

	// Length is len(OriginalText) + len(ReplyText), computed at
	// construction and never recomputed.
	Length int
}

// New builds a Conversation from parent and reply text. Negative scores
// are stored as zero.
func New(originalText, replyText string, score int) Conversation {
	if score < 0 {
		score = 0
	}
	return Conversation{
		OriginalText: originalText,
		ReplyText:    replyText,
		Score:        score,
		Length:       len(originalText) + len(replyText),
	}
}

// Record is one raw comment record from the source, before filtering.
type Record struct {
	// Fullname is the comment's globally unique id (t1_ prefix).
	Fullname string

	// Body is the raw comment text.
	Body string

	// Score is the raw engagement score. May be negative.
	Score int

	// IsRoot reports whether the comment replies directly to a
	// submission rather than to another comment.
	IsRoot bool

	// ParentFullname identifies the immediate parent (t1_ for a comment,
	// t3_ for a submission).
	ParentFullname string

	// LinkFullname identifies the submission the comment belongs to.
	LinkFullname string
}

// ParentSource is the resolved parent of a comment record: either the
// submission it replies to, or the parent comment.
type ParentSource interface {
	isParentSource()
}

// RootSubmission is the parent of a top-level reply.
type RootSubmission struct {
	Title    string
	SelfText string
}

func (RootSubmission) isParentSource() {}

// ChildComment is the parent of a nested reply.
type ChildComment struct {
	Body string
}

func (ChildComment) isParentSource() {}

// ParentResolver resolves a record's parent. Resolution is the only
// external call in the pipeline; a per-record failure is reported as a
// rejection by the Builder, never propagated.
type ParentResolver interface {
	ResolveParent(ctx context.Context, rec Record) (ParentSource, error)
}
