package reddit

import "encoding/json"

// Reddit thing kinds. Fullnames are "<kind>_<id>".
const (
	KindComment    = "t1"
	KindSubmission = "t3"
)

// thing is Reddit's generic typed envelope.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// listing is a paginated container of things.
type listing struct {
	Data struct {
		Children []thing `json:"children"`
		After    string  `json:"after"`
	} `json:"data"`
}

// Comment is a Reddit comment. Bodies are HTML-escaped as returned by
// the API (quote markers arrive as "&gt;"); the sanitizer handles that
// form.
type Comment struct {
	Name     string `json:"name"` // fullname, t1_ prefix
	Body     string `json:"body"`
	Score    int    `json:"score"`
	ParentID string `json:"parent_id"` // t1_ or t3_ fullname
	LinkID   string `json:"link_id"`   // t3_ fullname of the submission
}

// Submission is a Reddit post. SelfText is empty for link posts.
type Submission struct {
	Name     string `json:"name"` // fullname, t3_ prefix
	Title    string `json:"title"`
	SelfText string `json:"selftext"`
}
