// Package definition assembles a bounded Character.AI definition from a
// Reddit user's comment history.
//
// The Generator runs the full pipeline for one username: fetch raw
// comment records, build conversations (internal/conversation), rank
// them, and pack as many as fit into the definition budget.
package definition

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/personagen/internal/config"
	"github.com/fyrsmithlabs/personagen/internal/conversation"
)

// CommentSource supplies a user's recent comment records, newest first.
type CommentSource interface {
	Comments(ctx context.Context, username string, limit int) ([]conversation.Record, error)
}

// Generator orchestrates the extraction pipeline for one user.
type Generator struct {
	source   CommentSource
	resolver conversation.ParentResolver
	builder  *conversation.Builder
	packer   *Packer
	reporter conversation.Reporter
	limits   config.GeneratorConfig
	logger   *zap.Logger
}

// Result is a generated definition with its bookkeeping.
type Result struct {
	// Definition is the final artifact, at most MaxDefinitionLength
	// characters.
	Definition string

	// Length is len(Definition).
	Length int

	// Conversations is the number of exemplar blocks packed into the
	// definition.
	Conversations int
}

// NewGenerator creates a Generator. Limits are validated up front:
// an inconsistent configuration fails here, before any fetching, and is
// distinguishable from an empty result. A nil reporter discards
// pipeline events.
func NewGenerator(
	source CommentSource,
	resolver conversation.ParentResolver,
	limits config.GeneratorConfig,
	reporter conversation.Reporter,
	logger *zap.Logger,
) (*Generator, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator limits: %w", err)
	}
	if reporter == nil {
		reporter = conversation.NopReporter{}
	}

	return &Generator{
		source:   source,
		resolver: resolver,
		builder:  conversation.NewBuilder(limits, reporter),
		packer:   NewPacker(limits.MaxDefinitionLength),
		reporter: reporter,
		limits:   limits,
		logger:   logger,
	}, nil
}

// Generate builds a character definition from the user's most recent
// comments. limit caps how many comments are analyzed; zero means the
// configured default. Returns ErrNoUsableContent when no conversation
// survives filtering.
func (g *Generator) Generate(ctx context.Context, username string, limit int) (*Result, error) {
	if limit <= 0 {
		limit = g.limits.CommentLimit
	}

	logger := g.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("username", username),
	)
	logger.Info("generating character definition", zap.Int("limit", limit))

	records, err := g.source.Comments(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching comments for u/%s: %w", username, err)
	}
	logger.Info("processing comments", zap.Int("count", len(records)))

	convs := make([]conversation.Conversation, 0, len(records))
	for _, rec := range records {
		if conv, ok := g.builder.Build(ctx, rec, g.resolver); ok {
			convs = append(convs, conv)
		}
	}

	if len(convs) == 0 {
		return nil, ErrNoUsableContent
	}
	g.reporter.Accepted(len(convs))

	ranked := conversation.Select(convs)
	def, packed := g.packer.Pack(ranked, username)

	logger.Info("generated definition",
		zap.Int("length", len(def)),
		zap.Int("conversations", packed),
	)

	return &Result{
		Definition:    def,
		Length:        len(def),
		Conversations: packed,
	}, nil
}
