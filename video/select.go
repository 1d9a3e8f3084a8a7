package video

import (
	"fmt"

	"github.com/gogpu/glyphswap"
)

// Container formats accepted by Select.
const (
	FormatMP4  = "mp4"
	FormatAVI  = "avi"
	FormatNone = "none"
)

// Formats lists the accepted container names.
func Formats() []string {
	return []string{FormatMP4, FormatAVI, FormatNone}
}

// Select returns the encoder for format at fps frames per second.
// "mp4" uses ffmpeg when it is installed and falls back to AVI otherwise;
// "none" returns glyphswap.NoVideo.
func Select(format string, fps int) (glyphswap.VideoEncoder, error) {
	if format != FormatNone && fps < 1 {
		return nil, &glyphswap.ConfigError{Field: "video.fps", Reason: fmt.Sprintf("%d must be at least 1", fps)}
	}

	switch format {
	case FormatMP4:
		enc, err := NewFFmpeg(fps)
		if err == nil {
			return enc, nil
		}
		glyphswap.Logger().Warn("mp4 encoding unavailable, falling back to avi", "error", err)
		return NewMJPEG(fps), nil
	case FormatAVI:
		return NewMJPEG(fps), nil
	case FormatNone:
		return glyphswap.NoVideo{}, nil
	default:
		return nil, &glyphswap.ConfigError{
			Field:  "video.format",
			Reason: fmt.Sprintf("unknown format %q (valid: %v)", format, Formats()),
		}
	}
}
