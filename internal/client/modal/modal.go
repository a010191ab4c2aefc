// Package modal models the dialogs and the per-item dropdown menu shared by
// the dashboard and the editor. None of the types are safe for concurrent use.
package modal

// Dialog is an open/closed dialog holding the value being edited.
type Dialog[T any] struct {
	open    bool
	payload T
}

// Open shows the dialog with payload.
func (d *Dialog[T]) Open(payload T) {
	d.open = true
	d.payload = payload
}

// Close hides the dialog and drops its payload.
func (d *Dialog[T]) Close() {
	var zero T
	d.open = false
	d.payload = zero
}

func (d *Dialog[T]) IsOpen() bool { return d.open }

// Payload returns the current payload and whether the dialog is open.
func (d *Dialog[T]) Payload() (T, bool) { return d.payload, d.open }

// Update replaces the payload of an open dialog. It is a no-op when closed.
func (d *Dialog[T]) Update(fn func(T) T) {
	if d.open {
		d.payload = fn(d.payload)
	}
}

// Confirm is a yes/no dialog about a single target.
type Confirm[T any] struct {
	Dialog[T]
}

// Ask opens the prompt for target.
func (c *Confirm[T]) Ask(target T) { c.Open(target) }

// Accept closes the prompt and returns its target. ok is false when nothing
// was being asked.
func (c *Confirm[T]) Accept() (target T, ok bool) {
	target, ok = c.Payload()
	c.Close()
	return target, ok
}

// Cancel closes the prompt without acting.
func (c *Confirm[T]) Cancel() { c.Close() }

// Menu tracks which item's menu is open. At most one is.
type Menu[K comparable] struct {
	id   K
	open bool
}

// Toggle opens the menu of id, or closes it when it is already the open one.
func (m *Menu[K]) Toggle(id K) {
	if m.open && m.id == id {
		m.Close()
		return
	}
	m.id, m.open = id, true
}

func (m *Menu[K]) Close() {
	var zero K
	m.id, m.open = zero, false
}

// Open returns the id whose menu is open.
func (m *Menu[K]) Open() (K, bool) { return m.id, m.open }

func (m *Menu[K]) IsOpen(id K) bool { return m.open && m.id == id }
