package catalog

// App is one launchable entry in the drawer.
type App struct {
	ID          string `json:"id" yaml:"id"`
	Package     string `json:"package" yaml:"package"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	Exec        string `json:"exec,omitempty" yaml:"exec"`
	System      bool   `json:"system,omitempty" yaml:"system"`
}

// DisplayName is the text the drawer searches and shows.
func (a App) DisplayName() string {
	return a.Name
}

// Options controls how Load filters and orders a source's apps.
type Options struct {
	// IncludeSystem keeps apps flagged as system apps.
	IncludeSystem bool
	// SortAlphabetically orders apps by case-folded name; otherwise source order is kept.
	SortAlphabetically bool
}
