// Package sanitize normalizes Reddit markdown into plain display text.
//
// The transformations unwrap markup, drop quoted lines, URLs, user and
// subreddit mentions, collapse whitespace, and strip trailing "EDIT:"
// annotations. Text is a total function: it never fails, and it is
// idempotent, so callers may sanitize once for size checks and again at
// render time and get identical results.
package sanitize

import (
	"regexp"
	"strings"
)

// Markup wrappers are unwrapped first so the line- and token-level rules
// below see plain text.
var (
	boldPattern        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern      = regexp.MustCompile(`\*(.+?)\*`)
	strikePattern      = regexp.MustCompile(`~~(.+?)~~`)
	superscriptPattern = regexp.MustCompile(`\^(.+?)`)
	codePattern        = regexp.MustCompile("`(.+?)`")

	// quoteLinePattern matches a full line quoting someone else, in both
	// the HTML-escaped form the Reddit API returns and the literal form.
	quoteLinePattern = regexp.MustCompile(`(?m)^[ \t]*(?:&gt;|>).*$`)

	urlPattern       = regexp.MustCompile(`http[s]?://(?:[a-zA-Z0-9]|[$-_@.&+]|[!*\\(),]|(?:%[0-9a-fA-F]{2}))+`)
	userPattern      = regexp.MustCompile(`/?u/\w+`)
	subredditPattern = regexp.MustCompile(`/?r/\w+`)

	blankLinesPattern = regexp.MustCompile(`\n\s*\n\s*\n`)
	spacesPattern     = regexp.MustCompile(`[ \t]+`)

	// editPattern matches an "EDIT:" annotation and the rest of its line.
	editPattern = regexp.MustCompile(`(?im)(?:^|\s+)edit:.*$`)
)

// Text sanitizes Reddit markdown for inclusion in a character definition.
// Empty input yields an empty string.
func Text(text string) string {
	if text == "" {
		return ""
	}

	// Unwrap paired markup, keeping inner content. Bold before italic:
	// ** is a pair of italic markers to a regexp.
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = superscriptPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")

	// Drop quoted lines and reference tokens.
	text = quoteLinePattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	text = userPattern.ReplaceAllString(text, "")
	text = subredditPattern.ReplaceAllString(text, "")

	// Collapse runs of blank lines to one blank line. Replacing three
	// newlines at a time shortens long runs incrementally, so loop to
	// the fixed point.
	for blankLinesPattern.MatchString(text) {
		text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	}
	text = spacesPattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	// Drop trailing edit annotations.
	text = editPattern.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
