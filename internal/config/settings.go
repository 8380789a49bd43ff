package config

import (
	"fyne.io/fyne/v2"
)

// Theme names shown in the theme selector
const (
	ThemeDark  = "Dark"
	ThemeLight = "Light"
)

// Settings keys for Fyne preferences
const (
	KeyLastFolder = "last_folder"
	KeyTheme      = "theme"
)

// Default values
const (
	DefaultTheme = ThemeDark
)

// Settings manages the persisted desktop preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the last chosen download folder, "" if none
func (s *Settings) GetDownloadDirectory() string {
	return s.app.Preferences().String(KeyLastFolder)
}

// SetDownloadDirectory stores the download folder
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastFolder, dir)
}

// GetTheme returns the stored theme name, falling back to Dark for unknown values
func (s *Settings) GetTheme() string {
	name := s.app.Preferences().StringWithFallback(KeyTheme, DefaultTheme)
	if name != ThemeDark && name != ThemeLight {
		return DefaultTheme
	}
	return name
}

// SetTheme stores the theme name; unknown names are ignored
func (s *Settings) SetTheme(name string) {
	if name != ThemeDark && name != ThemeLight {
		return
	}
	s.app.Preferences().SetString(KeyTheme, name)
}

// GetThemeOptions returns available theme names
func (s *Settings) GetThemeOptions() []string {
	return []string{ThemeDark, ThemeLight}
}

// Save writes both values at once, used on shutdown
func (s *Settings) Save(dir, themeName string) {
	s.SetDownloadDirectory(dir)
	s.SetTheme(themeName)
}
