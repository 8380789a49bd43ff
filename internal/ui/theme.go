package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/multi-downloader/internal/config"
)

// CompactTheme is a compact theme pinned to a dark or light variant
type CompactTheme struct {
	variant fyne.ThemeVariant
}

// NewCompactTheme creates the theme for a theme name ("Dark" or "Light")
func NewCompactTheme(name string) fyne.Theme {
	variant := theme.VariantDark
	if name == config.ThemeLight {
		variant = theme.VariantLight
	}
	return &CompactTheme{variant: variant}
}

// Color returns theme colors for the pinned variant
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess, theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 184, B: 148, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 231, G: 76, B: 60, A: 255}
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 30, G: 30, B: 30, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameInputBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 42, G: 42, B: 42, A: 255}
		}
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 240, A: 255}
		}
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// IsDark reports whether the theme renders the dark variant
func (t *CompactTheme) IsDark() bool {
	return t.variant == theme.VariantDark
}
