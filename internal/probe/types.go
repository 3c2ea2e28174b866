package probe

import "fmt"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64 // Seconds.
	Size       int64
	BitRate    int64
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index        int
	Codec        string
	PixFmt       string
	Width        int
	Height       int
	BitRate      int64
	AvgFrameRate string
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index    int
	Codec    string
	Channels int
	BitRate  int64
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-cover-art video stream (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// VideoBitRate returns the primary video stream bitrate in bits/sec,
// falling back to the format-level bitrate when the stream value is
// unavailable or zero.
func (r *Result) VideoBitRate() int64 {
	if r.PrimaryVideo != nil && r.PrimaryVideo.BitRate > 0 {
		return r.PrimaryVideo.BitRate
	}
	return r.Format.BitRate
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (r *Result) Resolution() string {
	if r.PrimaryVideo == nil || r.PrimaryVideo.Width <= 0 || r.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", r.PrimaryVideo.Width, r.PrimaryVideo.Height)
}
