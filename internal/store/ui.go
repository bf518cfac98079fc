package store

// UIState holds cross-cutting display preferences
type UIState struct {
	DarkMode bool
	Loading  bool
}

func reduceUI(u UIState, action Action) UIState {
	switch a := action.(type) {
	case ToggleDarkMode:
		u.DarkMode = !u.DarkMode
		return u

	case SetLoading:
		u.Loading = a.Loading
		return u

	default:
		return u
	}
}
