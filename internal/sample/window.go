package sample

// DefaultWindowSize is the default number of samples retained for display.
const DefaultWindowSize = 300

// Window is a bounded, insertion-ordered sliding window of samples.
// Oldest entries are evicted FIFO once the limit is exceeded.
//
// The window has a single writer (the dashboard update loop) and no
// concurrent readers, so it carries no locking.
type Window struct {
	samples []Sample
	limit   int
}

// NewWindow creates a window bounded to limit samples.
func NewWindow(limit int) *Window {
	if limit <= 0 {
		limit = DefaultWindowSize
	}
	return &Window{
		samples: make([]Sample, 0, limit),
		limit:   limit,
	}
}

// Append adds one sample to the end of the window and trims to the limit.
func (w *Window) Append(s Sample) {
	w.samples = append(w.samples, s)
	w.Trim(w.limit)
}

// Trim discards the oldest entries so at most max samples remain,
// preserving order. A non-positive max clears the window.
func (w *Window) Trim(max int) {
	if max <= 0 {
		w.samples = w.samples[:0]
		return
	}
	if excess := len(w.samples) - max; excess > 0 {
		w.samples = append(w.samples[:0], w.samples[excess:]...)
	}
}

// SetLimit changes the window bound. Shrinking trims immediately;
// growing keeps the existing samples.
func (w *Window) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	w.limit = limit
	w.Trim(limit)
}

// Limit returns the current window bound.
func (w *Window) Limit() int {
	return w.limit
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return len(w.samples)
}

// Clear discards all samples, keeping the limit.
func (w *Window) Clear() {
	w.samples = w.samples[:0]
}

// Samples returns the retained samples in arrival order.
// The returned slice is shared with the window; callers must not mutate it.
func (w *Window) Samples() []Sample {
	return w.samples
}

// Series extracts the time series for one channel in arrival order,
// skipping samples where the channel is absent. Timestamps and values are
// parallel slices; samples without a timestamp use their window position.
func (w *Window) Series(ch Channel) (timestamps, values []float64) {
	for i, s := range w.samples {
		v := s.Value(ch)
		if v == nil {
			continue
		}
		ts := float64(i)
		if s.Timestamp != nil {
			ts = *s.Timestamp
		}
		timestamps = append(timestamps, ts)
		values = append(values, *v)
	}
	return timestamps, values
}

// Latest returns the most recent reading for the channel, or nil if no
// retained sample carries it.
func (w *Window) Latest(ch Channel) *float64 {
	for i := len(w.samples) - 1; i >= 0; i-- {
		if v := w.samples[i].Value(ch); v != nil {
			return v
		}
	}
	return nil
}
