package export

// Menu is the open/closed state of the download format menu.
// The zero value is closed.
type Menu struct {
	open bool
}

// Open reports whether the menu is showing.
func (m Menu) Open() bool {
	return m.open
}

// Toggle opens a closed menu and closes an open one.
func (m Menu) Toggle() Menu {
	return Menu{open: !m.open}
}

// Select closes the menu after a format was chosen.
func (m Menu) Select(Format) Menu {
	return Menu{}
}

// Dismiss closes the menu without choosing a format.
func (m Menu) Dismiss() Menu {
	return Menu{}
}
