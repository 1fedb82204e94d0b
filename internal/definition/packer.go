package definition

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/personagen/internal/conversation"
)

// Packer greedily assembles ranked conversations into a single
// definition bounded by maxDefinitionLength.
type Packer struct {
	maxDefinitionLength int
}

// NewPacker creates a Packer with the given total budget.
func NewPacker(maxDefinitionLength int) *Packer {
	return &Packer{maxDefinitionLength: maxDefinitionLength}
}

// Pack renders conversations in the given order until the next block
// would exceed the budget, then stops. It does not skip ahead to smaller
// blocks: the input is ranked, so later conversations are never better
// than the one that overflowed. Returns the definition and the number of
// conversations it contains.
//
// The intro line counts against the budget. With no packable
// conversations the definition is the intro alone.
func (p *Packer) Pack(convs []conversation.Conversation, username string) (string, int) {
	var parts strings.Builder

	intro := fmt.Sprintf("This character is based on the Reddit user u/%s. Here are examples of how they typically respond:\n\n", username)
	parts.WriteString(intro)
	currentLength := len(intro)

	packed := 0
	counter := 1
	for _, conv := range convs {
		block := conversation.Render(conv, conversation.Placeholder(counter))
		if currentLength+len(block) > p.maxDefinitionLength {
			break
		}

		parts.WriteString(block)
		currentLength += len(block)
		packed++

		// Rotate speaker placeholders 1..5 for variety.
		counter = counter%conversation.PlaceholderVariants + 1
	}

	return parts.String(), packed
}
