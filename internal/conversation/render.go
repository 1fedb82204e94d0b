package conversation

import (
	"fmt"

	"github.com/fyrsmithlabs/personagen/internal/sanitize"
)

// CharToken is the literal token Character.AI substitutes with the
// character's own name. It is emitted as-is, never expanded here.
const CharToken = "{{char}}"

// PlaceholderVariants is the number of rotating speaker placeholders.
const PlaceholderVariants = 5

// Placeholder returns the speaker placeholder token for a rotation
// counter in [1, PlaceholderVariants]. All variants have equal length,
// so a size check rendered with one variant is exact for any other.
func Placeholder(counter int) string {
	return fmt.Sprintf("{{random_user_%d}}", counter)
}

// Render formats a conversation as a two-line dialog block with a
// trailing blank line. Both sides are sanitized at render time;
// sanitize.Text is idempotent, so rendering is stable however often a
// conversation is rendered for size checks before final emission.
func Render(conv Conversation, speakerPlaceholder string) string {
	return fmt.Sprintf("%s: %s\n%s: %s\n\n",
		speakerPlaceholder,
		sanitize.Text(conv.OriginalText),
		CharToken,
		sanitize.Text(conv.ReplyText),
	)
}
