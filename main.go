package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/multi-downloader/internal/config"
	"github.com/ytget/multi-downloader/internal/download"
	"github.com/ytget/multi-downloader/internal/platform"
	"github.com/ytget/multi-downloader/internal/request"
	"github.com/ytget/multi-downloader/internal/transcode"
	"github.com/ytget/multi-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.multi-downloader"

	EnvLogLevel = "MULTIDL_LOGLEVEL"
)

func main() {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "info"
	}
	if err := config.InitLogging(level, config.LogFormatText); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	appName := ui.NewLocalization().GetText(ui.KeyAppTitle)
	log.Infof("%s v%s starting...", appName, version)

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", appName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		log.WithError(err).Debug("Window icon not found")
	}

	ffmpeg := platform.ResolveBinary(transcode.FFmpegCommand)
	log.WithField("ffmpeg", ffmpeg).Debug("Resolved ffmpeg")

	probe := transcode.NewEncoderProbe(transcode.NewCommandRunner(), ffmpeg)
	translator := request.NewTranslator(probe)
	downloadSvc := download.NewService(download.NewYTDLPExecutor(ffmpeg))

	ui.NewDownloaderUI(myWindow, myApp, downloadSvc, translator)

	myWindow.ShowAndRun()
}
