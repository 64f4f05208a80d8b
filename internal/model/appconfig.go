package model

// AppConfig holds application-wide preferences and default settings.
// Puzzle state itself is never persisted; only preferences are.
type AppConfig struct {
	// Defaults applied when creating a new puzzle
	DefaultCols    int     `json:"default_cols"`
	DefaultRows    int     `json:"default_rows"`
	DefaultBoardPx float64 `json:"default_board_px"` // table pixels per row of pieces

	// SnapDelta overrides the derived snap tolerance when > 0.
	SnapDelta float64 `json:"snap_delta"`

	// Application preferences
	RecentImages []string `json:"recent_images"`
	WindowWidth  float32  `json:"window_width"`
	WindowHeight float32  `json:"window_height"`
}

// DefaultAppConfig returns an AppConfig populated with sensible
// defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCols:    4,
		DefaultRows:    4,
		DefaultBoardPx: 600,
		SnapDelta:      0,
		RecentImages:   []string{},
		WindowWidth:    1200,
		WindowHeight:   800,
	}
}

// Apply adjusts puzzle metrics with the user's saved overrides.
func (c AppConfig) Apply(m *Metrics) {
	if c.SnapDelta > 0 {
		m.Delta = c.SnapDelta
	}
}

// RememberImage prepends path to the recent-images list, dropping
// duplicates and keeping at most five entries.
func (c *AppConfig) RememberImage(path string) {
	recent := []string{path}
	for _, p := range c.RecentImages {
		if p != path && len(recent) < 5 {
			recent = append(recent, p)
		}
	}
	c.RecentImages = recent
}
