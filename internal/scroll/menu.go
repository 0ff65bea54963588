package scroll

import "sync"

// Menu is the mobile navigation drawer. It is independent of the scroll
// state.
type Menu struct {
	mu   sync.Mutex
	open bool
}

// Toggle flips the menu (hamburger button) and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

// SelectLink records a nav link activation. Links share the hamburger's
// handler, so the menu flips whether or not it was open.
func (m *Menu) SelectLink() bool {
	return m.Toggle()
}

func (m *Menu) Open() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
