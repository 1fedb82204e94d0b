// Package conversation extracts parent/reply exemplar pairs from raw
// Reddit comment records.
//
// The main components are:
//   - Builder: converts one raw comment record plus its resolved parent
//     into zero or one Conversation, applying length filters
//   - Select: orders surviving conversations by engagement for packing
//   - Render: formats a conversation as a labeled two-line dialog block
//
// A record's parent is resolved exactly once, into a ParentSource tagged
// variant (RootSubmission for top-level replies, ChildComment otherwise),
// before any filtering happens. A failed resolution rejects that one
// record and never aborts the run.
//
// Rejections are routed through the Reporter interface rather than a
// package-level logger, so the pipeline stays testable without log
// side effects.
package conversation
