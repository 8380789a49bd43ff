package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyTheme            = "theme"
	KeySupported        = "supported"
	KeyEnterURL         = "enter_url"
	KeyPlatformNone     = "platform_none"
	KeyPlatformDetected = "platform_detected"
	KeyPlatformBad      = "platform_bad"
	KeyDownloadingFrom  = "downloading_from"
	KeyAudioOnly        = "audio_only"
	KeyGPU              = "gpu"
	KeyRangeHint        = "range_hint"
	KeyDownload         = "download"
	KeyChooseFolder     = "choose_folder"
	KeyOpenFolder       = "open_folder"
	KeySaveTo           = "save_to"
	KeyNoFolder         = "no_folder"
	KeyNoFolderTitle    = "no_folder_title"
	KeyNoFolderOpen     = "no_folder_open"
	KeyStarting         = "starting"
	KeyNotice           = "notice"
)

// Fallback language
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager using the system language
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	l.SetLanguage(systemLanguage())
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if text, found := l.texts[DefaultLanguage][key]; found {
		return text
	}

	return key
}

// systemLanguage reads the two-letter language from LC_ALL or LANG
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(env); len(v) >= 2 {
			return strings.ToLower(v[:2])
		}
	}
	return DefaultLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Multi-Platform Video Downloader",
		KeyTheme:            "Theme:",
		KeySupported:        "Supported: %s",
		KeyEnterURL:         "Paste video URL from any supported platform…",
		KeyPlatformNone:     "Platform: None detected",
		KeyPlatformDetected: "Platform: %s ✓",
		KeyPlatformBad:      "Platform: Not supported ✗",
		KeyDownloadingFrom:  "Downloading from: %s",
		KeyAudioOnly:        "Audio only (MP3)",
		KeyGPU:              "GPU re-encode (NVENC) - YouTube only",
		KeyRangeHint:        "Clip range e.g. 1:45 1:55 (YouTube only), leave blank for entire video",
		KeyDownload:         "Download",
		KeyChooseFolder:     "Choose Download Folder",
		KeyOpenFolder:       "Open Folder",
		KeySaveTo:           "Save to: %s",
		KeyNoFolder:         "No folder selected",
		KeyNoFolderTitle:    "No Folder",
		KeyNoFolderOpen:     "No download folder selected or it doesn't exist.",
		KeyStarting:         "Starting...",
		KeyNotice:           "Notice",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Загрузчик видео с разных платформ",
		KeyTheme:            "Тема:",
		KeySupported:        "Поддерживаются: %s",
		KeyEnterURL:         "Вставьте ссылку на видео с поддерживаемой платформы…",
		KeyPlatformNone:     "Платформа: не определена",
		KeyPlatformDetected: "Платформа: %s ✓",
		KeyPlatformBad:      "Платформа: не поддерживается ✗",
		KeyDownloadingFrom:  "Загрузка с: %s",
		KeyAudioOnly:        "Только аудио (MP3)",
		KeyGPU:              "Перекодирование на GPU (NVENC) - только YouTube",
		KeyRangeHint:        "Фрагмент, например 1:45 1:55 (только YouTube), пусто для всего видео",
		KeyDownload:         "Скачать",
		KeyChooseFolder:     "Выбрать папку загрузки",
		KeyOpenFolder:       "Открыть папку",
		KeySaveTo:           "Сохранять в: %s",
		KeyNoFolder:         "Папка не выбрана",
		KeyNoFolderTitle:    "Нет папки",
		KeyNoFolderOpen:     "Папка загрузки не выбрана или не существует.",
		KeyStarting:         "Запуск...",
		KeyNotice:           "Уведомление",
	}
}
