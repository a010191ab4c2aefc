package categories

// Window is a fixed-size sliding view over a list. The start index is kept
// within [0, max(0, n-size)].
type Window struct {
	size  int
	start int
}

func NewWindow(size int) Window {
	if size < 1 {
		size = 1
	}
	return Window{size: size}
}

func (w Window) Size() int  { return w.size }
func (w Window) Start() int { return w.start }

func (w Window) maxStart(n int) int {
	return max(0, n-w.size)
}

// Prev shifts the window one item back.
func (w *Window) Prev(n int) {
	w.start = min(max(0, w.start-1), w.maxStart(n))
}

// Next shifts the window one item forward.
func (w *Window) Next(n int) {
	w.start = min(w.start+1, w.maxStart(n))
}

// Clamp pulls the start back into range after the list shrank.
func (w *Window) Clamp(n int) {
	w.start = min(max(0, w.start), w.maxStart(n))
}

func (w Window) HasPrev() bool { return w.start > 0 }

func (w Window) HasNext(n int) bool { return w.start < w.maxStart(n) }

// Bounds returns the half-open range of visible indexes.
func (w Window) Bounds(n int) (lo, hi int) {
	lo = min(w.start, n)
	hi = min(lo+w.size, n)
	return lo, hi
}
