// Package video encodes substitution animations into video files.
//
// Three glyphswap.VideoEncoder implementations are provided:
//
//   - FFmpeg: MP4 through an ffmpeg process fed raw RGB frames on stdin
//   - MJPEG: Motion-JPEG AVI written in pure Go, always available
//   - glyphswap.NoVideo: reports the capability as unavailable
//
// Select picks one once at startup from a container name, preferring MP4
// and falling back to AVI when ffmpeg is not installed.
package video
