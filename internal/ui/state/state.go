package state

// AppState contains the screen state of the host. The selection itself lives
// in the host's selection store, and the catalog, query and open flag live in
// the controller.
type AppState struct {
	// Panel cursor
	CursorIndex    int // row under the cursor, -1 when the panel is empty
	ViewportOffset int // first visible row
	ViewportHeight int // rows that fit in the panel

	// Badge focus in multi mode
	FocusedBadge int // -1 when no badge has focus

	// Catalog bookkeeping
	CatalogSource string // file the catalog came from, "" for the builtin list
	CatalogCount  int

	// UI state
	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool
	StatusSeq     int // bumped on every status change so stale clears are ignored
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		CursorIndex:    -1,
		ViewportHeight: 8, // Default
		FocusedBadge:   -1,
	}
}

// SetStatus shows msg in the status bar and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus clears the status bar if seq is still the latest message
func (s *AppState) ClearStatus(seq int) {
	if seq != s.StatusSeq {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}

// MoveBadgeFocus moves the badge focus by delta among count badges. Moving
// left from the first badge or right from the last one drops the focus.
func (s *AppState) MoveBadgeFocus(delta, count int) {
	if count == 0 {
		s.FocusedBadge = -1
		return
	}
	if s.FocusedBadge < 0 {
		if delta < 0 {
			s.FocusedBadge = count - 1
		} else {
			s.FocusedBadge = 0
		}
		return
	}

	next := s.FocusedBadge + delta
	if next < 0 || next >= count {
		s.FocusedBadge = -1
		return
	}
	s.FocusedBadge = next
}

// ClampBadgeFocus keeps the badge focus valid after the selection shrank
func (s *AppState) ClampBadgeFocus(count int) {
	if s.FocusedBadge >= count {
		s.FocusedBadge = count - 1
	}
}
