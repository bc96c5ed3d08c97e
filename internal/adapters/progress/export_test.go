// export_test.go exports private fields for white-box testing.
package progress

import "time"

// SetClock replaces the renderer's time source.
func (r *Renderer) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}
