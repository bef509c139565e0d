package render

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"

	"mad-life/pkg/sims/life"
)

// GIFRecorder collects frames and encodes them as an animated GIF.
type GIFRecorder struct {
	path      string
	maxFrames int
	delay     int
	scale     int
	frames    []*image.Paletted
}

// NewGIFRecorder returns a recorder that keeps at most maxFrames frames
// (0 = unlimited) played back at fps, written to path on Close.
func NewGIFRecorder(path string, maxFrames, fps, scale int) *GIFRecorder {
	if fps <= 0 {
		fps = 30
	}
	// GIF delays are in hundredths of a second.
	delay := max(1, (100+fps/2)/fps)
	return &GIFRecorder{path: path, maxFrames: maxFrames, delay: delay, scale: scale}
}

// Frame appends g to the recording until the frame limit is reached.
func (r *GIFRecorder) Frame(gen int, g *life.Grid) error {
	if r.maxFrames > 0 && len(r.frames) >= r.maxFrames {
		return nil
	}
	r.frames = append(r.frames, Paletted(g, r.scale))
	return nil
}

// Len returns the number of recorded frames.
func (r *GIFRecorder) Len() int { return len(r.frames) }

// Full reports whether the frame limit has been reached.
func (r *GIFRecorder) Full() bool {
	return r.maxFrames > 0 && len(r.frames) >= r.maxFrames
}

// Encode writes the recorded frames to w.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return errors.New("render: no frames recorded")
	}
	delays := make([]int, len(r.frames))
	for i := range delays {
		delays[i] = r.delay
	}
	anim := &gif.GIF{Image: r.frames, Delay: delays}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// Close encodes the recording to the recorder's path.
func (r *GIFRecorder) Close() error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", r.path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
