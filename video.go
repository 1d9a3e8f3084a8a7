package glyphswap

import (
	"context"
)

// VideoArtifact describes an encoded transition video on disk.
type VideoArtifact struct {
	// Path is the written file.
	Path string
	// Format is the container, "mp4" or "avi"; it is also the file extension.
	Format string
	Frames int
	FPS    int
}

// VideoEncoder turns an animation into a video file.
//
// Encoders are chosen once at startup. An encoder whose capability is
// missing returns ErrVideoUnavailable, and the generator then omits the
// video rather than failing the task.
type VideoEncoder interface {
	// Format returns the container the encoder writes.
	Format() string

	// Encode writes frames to path, replacing its extension with the
	// encoder's container extension, and returns the written artifact.
	Encode(ctx context.Context, frames Animation, path string) (*VideoArtifact, error)
}

// NoVideo is the VideoEncoder used when video output is disabled or no
// encoding capability exists.
type NoVideo struct{}

// Format implements VideoEncoder.
func (NoVideo) Format() string { return "none" }

// Encode implements VideoEncoder and always reports ErrVideoUnavailable.
func (NoVideo) Encode(context.Context, Animation, string) (*VideoArtifact, error) {
	return nil, ErrVideoUnavailable
}
