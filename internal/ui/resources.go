package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "multi-downloader.png"
)

// LoadLogoResource loads the window icon from next to the executable, then
// from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), AppIcon)
		if _, err := os.Stat(bundled); err == nil {
			return fyne.LoadResourceFromPath(bundled)
		}
	}
	return fyne.LoadResourceFromPath(AppIcon)
}
