package video

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphswap"
)

// FFmpeg encodes MP4 (MPEG-4 Part 2, yuv420p) by piping raw RGB frames to
// an ffmpeg process.
type FFmpeg struct {
	binary string
	fps    int
}

// NewFFmpeg locates ffmpeg on PATH. It wraps glyphswap.ErrVideoUnavailable
// when ffmpeg is not installed.
func NewFFmpeg(fps int) (*FFmpeg, error) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: ffmpeg: %w", glyphswap.ErrVideoUnavailable, err)
	}
	return &FFmpeg{binary: bin, fps: fps}, nil
}

// Format returns "mp4".
func (f *FFmpeg) Format() string {
	return FormatMP4
}

// Args returns the ffmpeg command line encoding width x height rgb24 frames
// read from stdin into out. Odd dimensions are padded to even ones, which
// yuv420p requires.
func (f *FFmpeg) Args(width, height int, out string) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.Itoa(f.fps),
		"-i", "pipe:0",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", "mpeg4",
		"-q:v", "2",
		"-pix_fmt", "yuv420p",
		out,
	}
}

// Encode writes frames to path with its extension replaced by ".mp4".
func (f *FFmpeg) Encode(ctx context.Context, frames glyphswap.Animation, path string) (*glyphswap.VideoArtifact, error) {
	imgs, size, err := normalize(frames)
	if err != nil {
		return nil, err
	}
	out := withExt(path, FormatMP4)

	cmd := exec.CommandContext(ctx, f.binary, f.Args(size.Dx(), size.Dy(), out)...) //nolint:gosec // binary resolved by LookPath
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("video: ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("video: starting ffmpeg: %w", err)
	}

	// The writer and the process run concurrently; if ffmpeg exits early
	// its own error is more useful than the broken pipe.
	var writeErr error
	var g errgroup.Group
	g.Go(func() error {
		writeErr = writeRawRGB(stdin, imgs)
		_ = stdin.Close()
		return nil
	})
	g.Go(func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("video: ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if writeErr != nil {
		return nil, fmt.Errorf("video: writing frames to ffmpeg: %w", writeErr)
	}

	glyphswap.Logger().Debug("video encoded", "path", out, "format", FormatMP4, "frames", len(imgs))
	return &glyphswap.VideoArtifact{Path: out, Format: FormatMP4, Frames: len(imgs), FPS: f.fps}, nil
}

// writeRawRGB writes every image as packed rgb24 rows.
func writeRawRGB(w io.Writer, imgs []*image.RGBA) error {
	bw := bufio.NewWriter(w)
	for _, img := range imgs {
		width, height := img.Rect.Dx(), img.Rect.Dy()
		row := make([]byte, width*3)
		for y := 0; y < height; y++ {
			src := img.Pix[y*img.Stride : y*img.Stride+width*4]
			for x := 0; x < width; x++ {
				row[x*3+0] = src[x*4+0]
				row[x*3+1] = src[x*4+1]
				row[x*3+2] = src[x*4+2]
			}
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
