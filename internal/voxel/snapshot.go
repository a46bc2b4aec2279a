package voxel

import "sync/atomic"

// FrameContainer hands the most recent frame from the playback goroutine to
// the render loop without locking. The renderer reads whatever was published
// last; a missed frame is invisible at the bake rate.
type FrameContainer struct {
	latest atomic.Pointer[Frame]
}

// Publish replaces the latest frame.
func (c *FrameContainer) Publish(f *Frame) {
	c.latest.Store(f)
}

// Latest returns the last published frame, nil before the first publish.
func (c *FrameContainer) Latest() *Frame {
	return c.latest.Load()
}
