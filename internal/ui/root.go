package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/multi-downloader/internal/config"
	"github.com/ytget/multi-downloader/internal/download"
	"github.com/ytget/multi-downloader/internal/model"
	"github.com/ytget/multi-downloader/internal/platform"
	"github.com/ytget/multi-downloader/internal/request"
)

// SpecTranslator derives the yt-dlp spec for a validated request
type SpecTranslator interface {
	Translate(ctx context.Context, req model.DownloadRequest, dir string) model.ExternalDownloadSpec
}

// DownloaderUI is the single-window download form
type DownloaderUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	downloader   download.Downloader
	translator   SpecTranslator
	localization *Localization

	ctx    context.Context
	cancel context.CancelFunc

	downloadDir string
	themeName   string
	// inFlight is set from submit until the terminal update, UI thread only
	inFlight bool

	// Form widgets
	themeSelect   *widget.Select
	urlEntry      *widget.Entry
	platformLabel *widget.Label
	qualitySelect *widget.Select
	audioCheck    *widget.Check
	gpuCheck      *widget.Check
	rangeEntry    *widget.Entry
	downloadBtn   *widget.Button

	// Progress widgets
	progressBar      *widget.ProgressBar
	progressInfinite *widget.ProgressBarInfinite
	statusLabel      *widget.Label
	folderLabel      *widget.Label
}

// NewDownloaderUI builds the form, restores saved settings and installs it as
// the window content
func NewDownloaderUI(window fyne.Window, app fyne.App, downloader download.Downloader, translator SpecTranslator) *DownloaderUI {
	ctx, cancel := context.WithCancel(context.Background())
	ui := &DownloaderUI{
		window:       window,
		app:          app,
		settings:     config.NewSettings(app),
		downloader:   downloader,
		translator:   translator,
		localization: NewLocalization(),
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.downloadDir = ui.settings.GetDownloadDirectory()
	ui.themeName = ui.settings.GetTheme()
	app.Settings().SetTheme(NewCompactTheme(ui.themeName))

	window.SetContent(ui.buildContent())
	window.SetCloseIntercept(func() {
		ui.saveSettings()
		ui.cancel()
		window.Close()
	})

	return ui
}

// buildContent creates all widgets and lays them out top to bottom
func (ui *DownloaderUI) buildContent() fyne.CanvasObject {
	t := ui.localization.GetText

	ui.themeSelect = widget.NewSelect(ui.settings.GetThemeOptions(), ui.onThemeChanged)
	ui.themeSelect.SetSelected(ui.themeName)

	names := make([]string, 0, len(platform.SupportedPlatforms()))
	for _, p := range platform.SupportedPlatforms() {
		names = append(names, p.String())
	}
	supported := widget.NewLabel(fmt.Sprintf(t(KeySupported), strings.Join(names, PlatformJoinSep)))
	supported.Wrapping = fyne.TextWrapWord
	supported.Importance = widget.LowImportance

	ui.platformLabel = widget.NewLabel(t(KeyPlatformNone))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.onURLChanged
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownload() }

	ui.qualitySelect = widget.NewSelect(model.QualityOptions(), nil)
	ui.qualitySelect.SetSelected(string(model.DefaultQuality))

	ui.audioCheck = widget.NewCheck(t(KeyAudioOnly), ui.onAudioChanged)
	ui.gpuCheck = widget.NewCheck(t(KeyGPU), nil)

	ui.rangeEntry = widget.NewEntry()
	ui.rangeEntry.SetPlaceHolder(t(KeyRangeHint))

	ui.downloadBtn = widget.NewButton(t(KeyDownload), ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressInfinite = widget.NewProgressBarInfinite()
	ui.progressInfinite.Stop()
	ui.progressInfinite.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	chooseBtn := widget.NewButton(t(KeyChooseFolder), ui.onChooseFolder)
	openBtn := widget.NewButton(t(KeyOpenFolder), ui.onOpenFolder)
	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Wrapping = fyne.TextWrapWord
	ui.refreshFolderLabel()

	header := container.NewBorder(nil, nil, widget.NewLabel(t(KeyTheme)), nil, ui.themeSelect)
	options := container.NewHBox(ui.qualitySelect, ui.audioCheck)
	progress := container.NewStack(ui.progressBar, ui.progressInfinite)
	folders := container.NewGridWithColumns(2, chooseBtn, openBtn)

	form := container.NewVBox(
		header,
		supported,
		ui.urlEntry,
		ui.platformLabel,
		options,
		ui.gpuCheck,
		ui.rangeEntry,
		ui.downloadBtn,
		progress,
		ui.statusLabel,
		folders,
		ui.folderLabel,
	)

	return container.NewPadded(container.NewVScroll(form))
}

// onThemeChanged applies and persists the chosen theme
func (ui *DownloaderUI) onThemeChanged(name string) {
	if name == "" || name == ui.themeName {
		return
	}
	ui.themeName = name
	ui.app.Settings().SetTheme(NewCompactTheme(name))
	ui.settings.SetTheme(name)
}

// onURLChanged updates the live platform label
func (ui *DownloaderUI) onURLChanged(text string) {
	t := ui.localization.GetText
	text = strings.TrimSpace(text)

	switch p := platform.DetectPlatform(text); {
	case text == "":
		ui.platformLabel.SetText(t(KeyPlatformNone))
	case p.IsKnown():
		ui.platformLabel.SetText(fmt.Sprintf(t(KeyPlatformDetected), p))
	default:
		ui.platformLabel.SetText(t(KeyPlatformBad))
	}
}

// onAudioChanged disables the quality selector for audio downloads
func (ui *DownloaderUI) onAudioChanged(audio bool) {
	if audio {
		ui.qualitySelect.Disable()
	} else {
		ui.qualitySelect.Enable()
	}
}

// onDownload validates the form and shows validation failures in a dialog
func (ui *DownloaderUI) onDownload() {
	err := ui.submit()
	switch {
	case err == nil:
	case errors.Is(err, download.ErrBusy):
		log.Debug("Download ignored, another one is running")
	default:
		title, text := request.Message(err)
		dialog.ShowInformation(title, text, ui.window)
	}
}

// submit builds the request from the form and starts the download. Validation
// errors are returned before anything runs.
func (ui *DownloaderUI) submit() error {
	if ui.inFlight || ui.downloader.Busy() {
		return download.ErrBusy
	}

	req, err := request.Build(ui.currentInput())
	if err != nil {
		return err
	}
	if err := request.RequireDestination(ui.downloadDir); err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(ui.downloadDir); err != nil {
		return fmt.Errorf("failed to create download folder: %w", err)
	}

	t := ui.localization.GetText
	ui.inFlight = true
	ui.downloadBtn.Disable()
	ui.applyUpdate(model.ProgressUpdate{Percent: model.PercentIndeterminate, Status: t(KeyStarting)})
	ui.platformLabel.SetText(fmt.Sprintf(t(KeyDownloadingFrom), req.Platform()))

	dir := ui.downloadDir
	go ui.run(req, dir)
	return nil
}

// currentInput snapshots the form state
func (ui *DownloaderUI) currentInput() request.Input {
	return request.Input{
		URL:       ui.urlEntry.Text,
		AudioOnly: ui.audioCheck.Checked,
		Quality:   model.QualityLabel(ui.qualitySelect.Selected),
		Range:     ui.rangeEntry.Text,
		GPU:       ui.gpuCheck.Checked,
	}
}

// run translates the request off the UI thread, starts the download and
// forwards relay updates to the widgets
func (ui *DownloaderUI) run(req model.DownloadRequest, dir string) {
	spec := ui.translator.Translate(ui.ctx, req, dir)
	fyne.Do(func() { ui.announce(spec) })

	relay, err := ui.downloader.Start(ui.ctx, req, spec)
	switch {
	case errors.Is(err, download.ErrBusy):
		// another client holds the service
		log.Warn("Download service busy, request dropped")
		fyne.Do(ui.release)
		return
	case err != nil:
		fyne.Do(func() {
			ui.finishDownload(model.ProgressUpdate{Percent: 0, Status: download.StatusErrorPrefix + err.Error(), Err: err, Final: true})
		})
		return
	}

	relay.Consume(
		func(u model.ProgressUpdate) { fyne.Do(func() { ui.applyUpdate(u) }) },
		func(u model.ProgressUpdate) { fyne.Do(func() { ui.finishDownload(u) }) },
	)
}

// announce shows the clip range and notices of spec before the download starts
func (ui *DownloaderUI) announce(spec model.ExternalDownloadSpec) {
	if spec.Clip != nil {
		ui.statusLabel.SetText(fmt.Sprintf(download.StatusClippingFormat, spec.Clip.Start, spec.Clip.End))
	}
	if len(spec.Notices) == 0 {
		return
	}
	for _, notice := range spec.Notices {
		log.Warn(notice)
	}
	dialog.ShowInformation(ui.localization.GetText(KeyNotice), strings.Join(spec.Notices, "\n"), ui.window)
}

// applyUpdate renders an intermediate update
func (ui *DownloaderUI) applyUpdate(u model.ProgressUpdate) {
	if u.Indeterminate() {
		ui.progressBar.Hide()
		ui.progressInfinite.Show()
		ui.progressInfinite.Start()
	} else {
		ui.progressInfinite.Stop()
		ui.progressInfinite.Hide()
		ui.progressBar.Show()
		ui.progressBar.SetValue(float64(u.Percent) / PercentMax)
	}
	if u.Status != "" {
		ui.statusLabel.SetText(u.Status)
	}
}

// finishDownload renders the terminal update and re-enables the form
func (ui *DownloaderUI) finishDownload(u model.ProgressUpdate) {
	ui.applyUpdate(u)
	ui.inFlight = false
	ui.downloadBtn.Enable()
	ui.onURLChanged(ui.urlEntry.Text)
}

// release returns the form to idle without reporting an outcome
func (ui *DownloaderUI) release() {
	ui.progressInfinite.Stop()
	ui.progressInfinite.Hide()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.statusLabel.SetText("")
	ui.inFlight = false
	ui.downloadBtn.Enable()
	ui.onURLChanged(ui.urlEntry.Text)
}

// onChooseFolder opens the folder picker
func (ui *DownloaderUI) onChooseFolder() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadDir(uri.Path())
	}, ui.window)

	if dir := ui.folderStartDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// folderStartDir is the saved folder, else the user's Downloads, else ""
func (ui *DownloaderUI) folderStartDir() string {
	candidates := []string{ui.downloadDir}
	if home, err := platform.GetHomeDownloadsDir(); err == nil {
		candidates = append(candidates, home)
	}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// setDownloadDir records and persists the download folder
func (ui *DownloaderUI) setDownloadDir(dir string) {
	ui.downloadDir = dir
	ui.settings.SetDownloadDirectory(dir)
	ui.refreshFolderLabel()
}

// onOpenFolder opens the download folder in the file manager
func (ui *DownloaderUI) onOpenFolder() {
	err := platform.OpenFolder(ui.downloadDir)
	switch {
	case err == nil:
	case errors.Is(err, platform.ErrFolderMissing):
		t := ui.localization.GetText
		dialog.ShowInformation(t(KeyNoFolderTitle), t(KeyNoFolderOpen), ui.window)
	default:
		log.WithError(err).Warn("Failed to open download folder")
		dialog.ShowError(err, ui.window)
	}
}

func (ui *DownloaderUI) refreshFolderLabel() {
	t := ui.localization.GetText
	if ui.downloadDir == "" {
		ui.folderLabel.SetText(t(KeyNoFolder))
		return
	}
	ui.folderLabel.SetText(fmt.Sprintf(t(KeySaveTo), ui.downloadDir))
}

// saveSettings persists the folder and theme, used on close
func (ui *DownloaderUI) saveSettings() {
	ui.settings.Save(ui.downloadDir, ui.themeName)
}
