package model

// AppConfig holds application-wide preferences and default engine settings.
type AppConfig struct {
	// Defaults applied when optimizing a layout without explicit options
	DefaultGridSize        float64 `json:"default_grid_size"`
	DefaultPadding         float64 `json:"default_padding"`
	DefaultContainerWidth  float64 `json:"default_container_width"`
	DefaultContainerHeight float64 `json:"default_container_height"`
	DefaultSortBy          SortKey `json:"default_sort_by"`

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the same defaults as
// DefaultOptions, sized for a common desktop viewport.
func DefaultAppConfig() AppConfig {
	defaults := DefaultOptions(Size{Width: 1920, Height: 1080})
	return AppConfig{
		DefaultGridSize:        defaults.GridSize,
		DefaultPadding:         defaults.Padding,
		DefaultContainerWidth:  defaults.ContainerSize.Width,
		DefaultContainerHeight: defaults.ContainerSize.Height,
		DefaultSortBy:          defaults.SortBy,
		RecentLayouts:          []string{},
		Theme:                  "system",
	}
}

// ApplyToOptions copies the saved defaults into an OptimizationOptions value.
// Used when optimizing a layout so it inherits the user's preferences.
func (c AppConfig) ApplyToOptions(o *OptimizationOptions) {
	o.GridSize = c.DefaultGridSize
	o.Padding = c.DefaultPadding
	o.ContainerSize = Size{Width: c.DefaultContainerWidth, Height: c.DefaultContainerHeight}
	o.SortBy = c.DefaultSortBy
}
