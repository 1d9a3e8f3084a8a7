package glyphswap

import (
	"context"
)

// Task is one generated before/after example.
// Tasks are immutable after assembly; a Sink takes over their files.
type Task struct {
	ID     string
	Domain string
	Prompt string
	Pair   SequencePair
	Before *Frame
	After  *Frame
	// Video is nil when no video was produced.
	Video *VideoArtifact
}

// HasVideo reports whether the task carries a transition video.
func (t *Task) HasVideo() bool {
	return t.Video != nil
}

// Sink receives each finished task before the next one is generated.
type Sink interface {
	WriteTask(ctx context.Context, t *Task) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, t *Task) error

// WriteTask implements Sink.
func (f SinkFunc) WriteTask(ctx context.Context, t *Task) error {
	return f(ctx, t)
}
