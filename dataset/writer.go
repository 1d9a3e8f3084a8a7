package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphswap"
)

// File names inside a task directory.
const (
	FirstFrameFile = "first_frame.png"
	FinalFrameFile = "final_frame.png"
	PromptFile     = "prompt.txt"
	VideoBaseName  = "ground_truth"
)

// Writer writes tasks below a root directory. It implements glyphswap.Sink.
type Writer struct {
	root  string
	index *Index
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndex records every written task in ix.
func WithIndex(ix *Index) Option {
	return func(w *Writer) {
		w.index = ix
	}
}

// NewWriter creates a writer rooted at root.
func NewWriter(root string, opts ...Option) *Writer {
	w := &Writer{root: root}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the output root directory.
func (w *Writer) Root() string {
	return w.root
}

// DomainDir returns the directory holding all tasks of domain.
func (w *Writer) DomainDir(domain string) string {
	return filepath.Join(w.root, domain+"_task")
}

// IndexPath returns the conventional index location for domain.
func (w *Writer) IndexPath(domain string) string {
	return filepath.Join(w.DomainDir(domain), IndexFile)
}

// TaskDir returns the directory of t.
func (w *Writer) TaskDir(t *glyphswap.Task) string {
	return filepath.Join(w.DomainDir(t.Domain), t.ID)
}

// WriteTask writes t's files. An existing directory for the same task is
// replaced. The task's video, if any, is moved into the task directory.
// On failure nothing of the task is left behind.
func (w *Writer) WriteTask(ctx context.Context, t *glyphswap.Task) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	domainDir := w.DomainDir(t.Domain)
	if err := os.MkdirAll(domainDir, 0o755); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	staging, err := os.MkdirTemp(domainDir, "."+t.ID+"-")
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(staging)
		}
	}()

	if err := t.Before.SavePNG(filepath.Join(staging, FirstFrameFile)); err != nil {
		return fmt.Errorf("dataset: writing %s: %w", FirstFrameFile, err)
	}
	if err := t.After.SavePNG(filepath.Join(staging, FinalFrameFile)); err != nil {
		return fmt.Errorf("dataset: writing %s: %w", FinalFrameFile, err)
	}
	if err := os.WriteFile(filepath.Join(staging, PromptFile), []byte(t.Prompt), 0o644); err != nil { //nolint:gosec // dataset files are world-readable
		return fmt.Errorf("dataset: writing %s: %w", PromptFile, err)
	}

	videoName := ""
	if t.HasVideo() {
		videoName = VideoBaseName + "." + t.Video.Format
		if err := copyFile(t.Video.Path, filepath.Join(staging, videoName)); err != nil {
			return fmt.Errorf("dataset: copying video: %w", err)
		}
	}

	dir := w.TaskDir(t)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := os.Rename(staging, dir); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	log := glyphswap.Logger()
	if t.HasVideo() {
		if err := os.Remove(t.Video.Path); err != nil {
			log.Debug("leaving encoder output in place", "path", t.Video.Path, "error", err)
		}
	}
	log.Debug("task written", "task", t.ID, "dir", dir, "video", videoName)

	if w.index != nil {
		rel, relErr := filepath.Rel(w.root, dir)
		if relErr != nil {
			rel = dir
		}
		if err := w.index.Record(ctx, t, rel, videoName); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // path produced by the video encoder
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) //nolint:gosec // path inside the staging directory
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
