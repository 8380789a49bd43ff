package request

// Package request validates raw user input into immutable download requests
// and translates them into the yt-dlp download spec: format selector, output
// template, GPU re-encode arguments and clip window.
