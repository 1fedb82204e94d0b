package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/personagen/internal/config"
)

// staticResolver resolves every record to the same parent.
type staticResolver struct {
	source ParentSource
	err    error
}

func (r staticResolver) ResolveParent(context.Context, Record) (ParentSource, error) {
	return r.source, r.err
}

// recordingReporter captures rejection reasons per comment fullname.
type recordingReporter struct {
	rejected map[string]RejectReason
	accepted int
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{rejected: make(map[string]RejectReason)}
}

func (r *recordingReporter) Rejected(rec Record, reason RejectReason) {
	r.rejected[rec.Fullname] = reason
}

func (r *recordingReporter) Accepted(count int) {
	r.accepted = count
}

func testLimits() config.GeneratorConfig {
	return config.GeneratorConfig{
		MaxDefinitionLength:         32000,
		MaxSingleConversationLength: 800,
		MinCommentLength:            10,
		MaxCommentLength:            300,
		CommentLimit:                100,
	}
}

func validRecord() Record {
	return Record{
		Fullname:       "t1_reply",
		Body:           "a perfectly reasonable reply",
		Score:          7,
		IsRoot:         false,
		ParentFullname: "t1_parent",
		LinkFullname:   "t3_post",
	}
}

func TestBuilder_Build(t *testing.T) {
	parent := ChildComment{Body: "what the parent comment said"}

	t.Run("valid child reply", func(t *testing.T) {
		builder := NewBuilder(testLimits(), nil)
		rec := validRecord()

		conv, ok := builder.Build(context.Background(), rec, staticResolver{source: parent})
		require.True(t, ok)
		assert.Equal(t, parent.Body, conv.OriginalText)
		assert.Equal(t, rec.Body, conv.ReplyText)
		assert.Equal(t, 7, conv.Score)
		assert.Equal(t, len(parent.Body)+len(rec.Body), conv.Length)
	})

	t.Run("negative score clamped to zero", func(t *testing.T) {
		builder := NewBuilder(testLimits(), nil)
		rec := validRecord()
		rec.Score = -12

		conv, ok := builder.Build(context.Background(), rec, staticResolver{source: parent})
		require.True(t, ok)
		assert.Equal(t, 0, conv.Score)
	})

	t.Run("body below minimum length", func(t *testing.T) {
		reporter := newRecordingReporter()
		builder := NewBuilder(testLimits(), reporter)
		rec := validRecord()
		rec.Body = "short" // 5 < 10

		_, ok := builder.Build(context.Background(), rec, staticResolver{source: parent})
		require.False(t, ok)
		assert.Equal(t, ReasonBodyLength, reporter.rejected[rec.Fullname])
	})

	t.Run("body above maximum length", func(t *testing.T) {
		reporter := newRecordingReporter()
		builder := NewBuilder(testLimits(), reporter)
		rec := validRecord()
		rec.Body = strings.Repeat("a", 301)

		_, ok := builder.Build(context.Background(), rec, staticResolver{source: parent})
		require.False(t, ok)
		assert.Equal(t, ReasonBodyLength, reporter.rejected[rec.Fullname])
	})

	t.Run("deleted and removed bodies", func(t *testing.T) {
		for _, body := range []string{"[deleted]", "[removed]", ""} {
			reporter := newRecordingReporter()
			builder := NewBuilder(testLimits(), reporter)
			rec := validRecord()
			rec.Body = body

			_, ok := builder.Build(context.Background(), rec, staticResolver{source: parent})
			require.False(t, ok, "body %q should be rejected", body)
			assert.Equal(t, ReasonDeletedBody, reporter.rejected[rec.Fullname])
		}
	})

	t.Run("resolver failure rejects only the record", func(t *testing.T) {
		reporter := newRecordingReporter()
		builder := NewBuilder(testLimits(), reporter)

		_, ok := builder.Build(context.Background(), validRecord(), staticResolver{err: errors.New("api unavailable")})
		require.False(t, ok)
		assert.Equal(t, ReasonNoParent, reporter.rejected["t1_reply"])
	})

	t.Run("parent comment without body", func(t *testing.T) {
		reporter := newRecordingReporter()
		builder := NewBuilder(testLimits(), reporter)

		_, ok := builder.Build(context.Background(), validRecord(), staticResolver{source: ChildComment{}})
		require.False(t, ok)
		assert.Equal(t, ReasonNoParent, reporter.rejected["t1_reply"])
	})

	t.Run("parent outside length bounds", func(t *testing.T) {
		for _, body := range []string{"tiny", strings.Repeat("b", 301)} {
			reporter := newRecordingReporter()
			builder := NewBuilder(testLimits(), reporter)

			_, ok := builder.Build(context.Background(), validRecord(), staticResolver{source: ChildComment{Body: body}})
			require.False(t, ok)
			assert.Equal(t, ReasonParentLength, reporter.rejected["t1_reply"])
		}
	})

	t.Run("root reply uses submission title", func(t *testing.T) {
		builder := NewBuilder(testLimits(), nil)
		rec := validRecord()
		rec.IsRoot = true

		conv, ok := builder.Build(context.Background(), rec, staticResolver{
			source: RootSubmission{Title: "an interesting post title"},
		})
		require.True(t, ok)
		assert.Equal(t, "an interesting post title", conv.OriginalText)
	})

	t.Run("short self-text joined to title", func(t *testing.T) {
		builder := NewBuilder(testLimits(), nil)
		rec := validRecord()
		rec.IsRoot = true

		conv, ok := builder.Build(context.Background(), rec, staticResolver{
			source: RootSubmission{Title: "post title here", SelfText: "with a short body"},
		})
		require.True(t, ok)
		assert.Equal(t, "post title here\nwith a short body", conv.OriginalText)
	})

	t.Run("long self-text dropped from title", func(t *testing.T) {
		builder := NewBuilder(testLimits(), nil)
		rec := validRecord()
		rec.IsRoot = true

		conv, ok := builder.Build(context.Background(), rec, staticResolver{
			source: RootSubmission{Title: "post title here", SelfText: strings.Repeat("c", 300)},
		})
		require.True(t, ok)
		assert.Equal(t, "post title here", conv.OriginalText)
	})

	t.Run("rendered form over single conversation budget", func(t *testing.T) {
		limits := testLimits()
		limits.MinCommentLength = 5
		limits.MaxCommentLength = 60
		limits.MaxSingleConversationLength = 80

		reporter := newRecordingReporter()
		builder := NewBuilder(limits, reporter)
		rec := validRecord()
		rec.Body = strings.Repeat("r", 40)

		// Raw lengths pass the [5, 60] filter, but labels push the
		// rendered block past 80.
		_, ok := builder.Build(context.Background(), rec, staticResolver{source: ChildComment{Body: strings.Repeat("p", 40)}})
		require.False(t, ok)
		assert.Equal(t, ReasonRenderedTooLong, reporter.rejected["t1_reply"])
	})
}
