package video

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/gogpu/glyphswap"
)

// DefaultJPEGQuality is the per-frame JPEG quality of MJPEG videos.
const DefaultJPEGQuality = 90

// AVI header flags.
const (
	avifHasIndex   = 0x10
	aviifKeyframe  = 0x10
	bitmapBitCount = 24
)

// MJPEG writes Motion-JPEG AVI files: every frame is an independent JPEG
// image stored in a RIFF container with an idx1 index.
type MJPEG struct {
	fps     int
	quality int
}

// NewMJPEG creates an encoder at fps frames per second.
func NewMJPEG(fps int) *MJPEG {
	return &MJPEG{fps: fps, quality: DefaultJPEGQuality}
}

// Format returns "avi".
func (m *MJPEG) Format() string {
	return FormatAVI
}

// Encode writes frames to path with its extension replaced by ".avi".
// ctx is checked between frames.
func (m *MJPEG) Encode(ctx context.Context, frames glyphswap.Animation, path string) (*glyphswap.VideoArtifact, error) {
	imgs, size, err := normalize(frames)
	if err != nil {
		return nil, err
	}

	jpegs := make([][]byte, len(imgs))
	for i, img := range imgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: m.quality}); err != nil {
			return nil, fmt.Errorf("video: encoding frame %d: %w", i, err)
		}
		jpegs[i] = buf.Bytes()
	}

	out := withExt(path, FormatAVI)
	if err := os.WriteFile(out, buildAVI(size, m.fps, jpegs), 0o644); err != nil { //nolint:gosec // video files are world-readable
		return nil, fmt.Errorf("video: %w", err)
	}

	glyphswap.Logger().Debug("video encoded", "path", out, "format", FormatAVI, "frames", len(imgs))
	return &glyphswap.VideoArtifact{Path: out, Format: FormatAVI, Frames: len(imgs), FPS: m.fps}, nil
}

type fourCC [4]byte

func fcc(s string) fourCC {
	var f fourCC
	copy(f[:], s)
	return f
}

// aviMainHeader is AVIMAINHEADER without its chunk header.
type aviMainHeader struct {
	MicroSecPerFrame    uint32
	MaxBytesPerSec      uint32
	PaddingGranularity  uint32
	Flags               uint32
	TotalFrames         uint32
	InitialFrames       uint32
	Streams             uint32
	SuggestedBufferSize uint32
	Width               uint32
	Height              uint32
	Reserved            [4]uint32
}

// aviStreamHeader is AVISTREAMHEADER without its chunk header.
type aviStreamHeader struct {
	Type                fourCC
	Handler             fourCC
	Flags               uint32
	Priority            uint16
	Language            uint16
	InitialFrames       uint32
	Scale               uint32
	Rate                uint32
	Start               uint32
	Length              uint32
	SuggestedBufferSize uint32
	Quality             uint32
	SampleSize          uint32
	Frame               [4]int16
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   fourCC
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type aviIndexEntry struct {
	ChunkID fourCC
	Flags   uint32
	Offset  uint32
	Size    uint32
}

// buildAVI assembles the complete RIFF file.
func buildAVI(size image.Rectangle, fps int, jpegs [][]byte) []byte {
	w, h := size.Dx(), size.Dy()
	n := uint32(len(jpegs))

	var maxFrame uint32
	for _, j := range jpegs {
		maxFrame = max(maxFrame, uint32(len(j)))
	}

	avih := aviMainHeader{
		MicroSecPerFrame:    uint32(1_000_000 / fps),
		MaxBytesPerSec:      maxFrame * uint32(fps),
		Flags:               avifHasIndex,
		TotalFrames:         n,
		Streams:             1,
		SuggestedBufferSize: maxFrame,
		Width:               uint32(w),
		Height:              uint32(h),
	}
	strh := aviStreamHeader{
		Type:                fcc("vids"),
		Handler:             fcc("MJPG"),
		Scale:               1,
		Rate:                uint32(fps),
		Length:              n,
		SuggestedBufferSize: maxFrame,
		Quality:             0xFFFFFFFF,
		Frame:               [4]int16{0, 0, int16(w), int16(h)},
	}
	strf := bitmapInfoHeader{
		Size:        uint32(binary.Size(bitmapInfoHeader{})),
		Width:       int32(w),
		Height:      int32(h),
		Planes:      1,
		BitCount:    bitmapBitCount,
		Compression: fcc("MJPG"),
		SizeImage:   uint32(w * h * 3),
	}

	hdrl := list("hdrl",
		chunk("avih", encode(avih)),
		list("strl",
			chunk("strh", encode(strh)),
			chunk("strf", encode(strf)),
		),
	)

	// idx1 offsets are relative to the "movi" fourcc.
	frames := make([][]byte, len(jpegs))
	index := make([]aviIndexEntry, len(jpegs))
	offset := uint32(4)
	for i, j := range jpegs {
		frames[i] = chunk("00dc", j)
		index[i] = aviIndexEntry{ChunkID: fcc("00dc"), Flags: aviifKeyframe, Offset: offset, Size: uint32(len(j))}
		offset += uint32(len(frames[i]))
	}
	movi := list("movi", frames...)

	return list("AVI ", hdrl, movi, chunk("idx1", encode(index))).riff()
}

// riffChunk is a serialized chunk whose id may still be rewritten.
type riffChunk []byte

func (c riffChunk) riff() []byte {
	copy(c[:4], "RIFF")
	return c
}

// chunk serializes id, the little-endian size and data, padded to an even
// length.
func chunk(id string, data []byte) riffChunk {
	out := make([]byte, 8, 8+len(data)+1)
	copy(out, id)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(data)))
	out = append(out, data...)
	if len(data)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// list serializes a LIST chunk of kind containing parts.
func list[T ~[]byte](kind string, parts ...T) riffChunk {
	body := []byte(kind)
	for _, p := range parts {
		body = append(body, p...)
	}
	return chunk("LIST", body)
}

func encode(v any) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, v)
	return buf.Bytes()
}
