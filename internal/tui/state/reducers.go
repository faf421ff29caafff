package state

// TogglePanel shows p, or hides it when it is already shown.
func TogglePanel(s UIState, p Panel) UIState {
	if s.Panel == p {
		s.Panel = NoPanel
	} else {
		s.Panel = p
	}
	s.ScrollV = 0
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// Resize updates the terminal size and falls back to the unified diff when
// too narrow for two columns.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

// ScrollUp moves the journal view towards older lines, bounded by total.
func ScrollUp(s UIState, fast bool, total int) UIState {
	delta := 1
	if fast {
		delta = 5
	}
	s.ScrollV += delta
	if s.ScrollV > total {
		s.ScrollV = total
	}
	return s
}

// ScrollDown moves the journal view towards the newest line.
func ScrollDown(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = 5
	}
	if s.ScrollV >= delta {
		s.ScrollV -= delta
	} else {
		s.ScrollV = 0
	}
	return s
}

// SetNotice records a one-shot message for the status bar.
func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}

// ClearNotice drops the current notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}
