// Package watch implements the Event Source and Debouncer: a recursive
// filesystem watcher that emits created/modified/deleted events for
// supported files, debounced per path.
package watch

// Kind is the type of filesystem event the Ingest Pipeline consumes.
type Kind int

const (
	Created Kind = iota
	Modified
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is one (kind, path) pair delivered to the Ingest Pipeline. A
// watcher-reported move is already decomposed into a Deleted event for
// the source path and a Created event for the destination path by the
// time it reaches here.
type Event struct {
	Kind Kind
	Path string
}
