package model

// UIState holds transient UI state that is not owned by a page controller
type UIState struct {
	StatusMessage string `json:"statusMessage"`
}

// AppState is the root application state
type AppState struct {
	Mode     Mode          `json:"mode"`
	Page     Page          `json:"page"`
	Terminal TerminalState `json:"terminal"`
	UI       UIState       `json:"ui"`
	Source   string        `json:"source"`
	// Loaded flips once the catalog arrives; controls stay inert until then.
	Loaded bool `json:"loaded"`
	// LoadFailed is set when the single load attempt failed.
	LoadFailed bool `json:"loadFailed"`
}

// NewAppState creates the initial state for the given start page
func NewAppState(page Page, source string) *AppState {
	return &AppState{
		Mode:   ModeLoading,
		Page:   page,
		Source: source,
	}
}
