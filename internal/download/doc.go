package download

// Package download runs the single in-flight download on top of yt-dlp (via
// github.com/lrstanley/go-ytdlp). It owns the task lifecycle, converts yt-dlp
// progress into status text and relays it to the presentation layer.
