package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	assert.Equal(t, app, settings.app)
}

func TestDownloadDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp())

	assert.Empty(t, settings.GetDownloadDirectory(), "no folder until one is chosen")

	settings.SetDownloadDirectory("/custom/downloads")
	assert.Equal(t, "/custom/downloads", settings.GetDownloadDirectory())
}

func TestTheme(t *testing.T) {
	settings := NewSettings(test.NewApp())

	assert.Equal(t, ThemeDark, settings.GetTheme())

	settings.SetTheme(ThemeLight)
	assert.Equal(t, ThemeLight, settings.GetTheme())

	settings.SetTheme("Solarized")
	assert.Equal(t, ThemeLight, settings.GetTheme(), "unknown theme is ignored")
}

func TestTheme_CorruptValueFallsBack(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyTheme, "Neon")

	assert.Equal(t, ThemeDark, NewSettings(app).GetTheme())
}

func TestSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.Save("/videos", ThemeLight)

	assert.Equal(t, "/videos", app.Preferences().String(KeyLastFolder))
	assert.Equal(t, ThemeLight, app.Preferences().String(KeyTheme))
}

func TestGetThemeOptions(t *testing.T) {
	assert.Equal(t, []string{"Dark", "Light"}, NewSettings(test.NewApp()).GetThemeOptions())
}
