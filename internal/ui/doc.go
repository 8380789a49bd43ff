package ui

// Package ui contains the Fyne desktop form: URL entry with live platform
// detection, quality and clip options, folder selection and a progress area
// fed by the download relay. UI strings are localized via Localization.
