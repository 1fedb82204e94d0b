package reddit

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/personagen/internal/conversation"
)

// Source adapts the Reddit API to the extraction pipeline: it supplies
// raw comment records and resolves their parents into the pipeline's
// tagged ParentSource variant.
//
// Parent lookups are cached for the lifetime of the Source, so replies
// inside one hot thread resolve their shared submission with a single
// API call. The pipeline is single-threaded; the caches are unlocked.
type Source struct {
	client *Client
	logger *zap.Logger

	submissions map[string]*Submission
	parents     map[string]*Comment
}

// NewSource creates a Source backed by the given client.
func NewSource(client *Client, logger *zap.Logger) *Source {
	return &Source{
		client:      client,
		logger:      logger,
		submissions: make(map[string]*Submission),
		parents:     make(map[string]*Comment),
	}
}

// Comments fetches the user's newest comments as pipeline records.
func (s *Source) Comments(ctx context.Context, username string, limit int) ([]conversation.Record, error) {
	comments, err := s.client.UserComments(ctx, username, limit)
	if err != nil {
		return nil, err
	}

	records := make([]conversation.Record, 0, len(comments))
	for _, c := range comments {
		records = append(records, conversation.Record{
			Fullname:       c.Name,
			Body:           c.Body,
			Score:          c.Score,
			IsRoot:         strings.HasPrefix(c.ParentID, KindSubmission+"_"),
			ParentFullname: c.ParentID,
			LinkFullname:   c.LinkID,
		})
	}
	return records, nil
}

// ResolveParent resolves a record's parent once: the submission for a
// top-level reply, the parent comment otherwise.
func (s *Source) ResolveParent(ctx context.Context, rec conversation.Record) (conversation.ParentSource, error) {
	if rec.IsRoot {
		sub, err := s.submission(ctx, rec.LinkFullname)
		if err != nil {
			return nil, err
		}
		return conversation.RootSubmission{Title: sub.Title, SelfText: sub.SelfText}, nil
	}

	parent, err := s.parentComment(ctx, rec.ParentFullname)
	if err != nil {
		return nil, err
	}
	return conversation.ChildComment{Body: parent.Body}, nil
}

func (s *Source) submission(ctx context.Context, fullname string) (*Submission, error) {
	if sub, ok := s.submissions[fullname]; ok {
		return sub, nil
	}
	sub, err := s.client.SubmissionByFullname(ctx, fullname)
	if err != nil {
		return nil, err
	}
	s.submissions[fullname] = sub
	return sub, nil
}

func (s *Source) parentComment(ctx context.Context, fullname string) (*Comment, error) {
	if parent, ok := s.parents[fullname]; ok {
		return parent, nil
	}
	parent, err := s.client.CommentByFullname(ctx, fullname)
	if err != nil {
		return nil, err
	}
	s.parents[fullname] = parent
	return parent, nil
}
