// Package reddit implements the Reddit API client and the record source
// feeding the extraction pipeline.
//
// Authentication uses Reddit's application-only OAuth2 flow (client
// credentials against www.reddit.com, API calls against
// oauth.reddit.com). Reddit requires a descriptive User-Agent on every
// request, token fetches included, and allows script applications 60
// requests per minute; both are enforced here so callers never think
// about them.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/personagen/internal/config"
)

// maxPageSize is the Reddit API's listing page cap.
const maxPageSize = 100

// ErrNotFound means the requested thing does not exist or is not
// visible to the client.
var ErrNotFound = errors.New("thing not found")

// Client is an authenticated, rate-limited Reddit API client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiURL     string
	logger     *zap.Logger
}

// NewClient creates a Client from config. Tokens are fetched lazily on
// first use and refreshed automatically.
func NewClient(cfg config.RedditConfig, logger *zap.Logger) *Client {
	base := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: cfg.UserAgent,
		},
	}

	// The oauth2 client uses base both for token fetches and as the
	// underlying transport for API calls, so the User-Agent applies to
	// every request.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret.Value(),
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	httpClient := creds.Client(ctx)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		logger:     logger,
	}
}

// UserComments fetches up to limit of the user's newest comments,
// following pagination cursors as needed.
func (c *Client) UserComments(ctx context.Context, username string, limit int) ([]Comment, error) {
	comments := make([]Comment, 0, limit)
	after := ""

	for len(comments) < limit {
		pageSize := limit - len(comments)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		query := url.Values{
			"limit": {strconv.Itoa(pageSize)},
			"sort":  {"new"},
		}
		if after != "" {
			query.Set("after", after)
		}

		var page listing
		if err := c.get(ctx, "/user/"+url.PathEscape(username)+"/comments", query, &page); err != nil {
			return nil, err
		}
		if len(page.Data.Children) == 0 {
			break
		}

		for _, child := range page.Data.Children {
			if child.Kind != KindComment {
				continue
			}
			var comment Comment
			if err := json.Unmarshal(child.Data, &comment); err != nil {
				return nil, fmt.Errorf("decoding comment: %w", err)
			}
			comments = append(comments, comment)
			if len(comments) == limit {
				break
			}
		}

		if page.Data.After == "" {
			break
		}
		after = page.Data.After
	}

	c.logger.Debug("fetched user comments",
		zap.String("username", username),
		zap.Int("count", len(comments)),
	)
	return comments, nil
}

// CommentByFullname fetches a single comment by its t1_ fullname.
func (c *Client) CommentByFullname(ctx context.Context, fullname string) (*Comment, error) {
	t, err := c.info(ctx, fullname)
	if err != nil {
		return nil, err
	}
	if t.Kind != KindComment {
		return nil, fmt.Errorf("%s is a %s, not a comment: %w", fullname, t.Kind, ErrNotFound)
	}
	var comment Comment
	if err := json.Unmarshal(t.Data, &comment); err != nil {
		return nil, fmt.Errorf("decoding comment %s: %w", fullname, err)
	}
	return &comment, nil
}

// SubmissionByFullname fetches a single submission by its t3_ fullname.
func (c *Client) SubmissionByFullname(ctx context.Context, fullname string) (*Submission, error) {
	t, err := c.info(ctx, fullname)
	if err != nil {
		return nil, err
	}
	if t.Kind != KindSubmission {
		return nil, fmt.Errorf("%s is a %s, not a submission: %w", fullname, t.Kind, ErrNotFound)
	}
	var submission Submission
	if err := json.Unmarshal(t.Data, &submission); err != nil {
		return nil, fmt.Errorf("decoding submission %s: %w", fullname, err)
	}
	return &submission, nil
}

// info looks up one thing by fullname via /api/info.
func (c *Client) info(ctx context.Context, fullname string) (*thing, error) {
	var page listing
	if err := c.get(ctx, "/api/info", url.Values{"id": {fullname}}, &page); err != nil {
		return nil, err
	}
	if len(page.Data.Children) == 0 {
		return nil, fmt.Errorf("%s: %w", fullname, ErrNotFound)
	}
	return &page.Data.Children[0], nil
}

// get performs a rate-limited GET and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit API %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reddit API %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

// userAgentTransport stamps Reddit's mandatory User-Agent header onto
// every outgoing request.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
