package transcode

// Package transcode holds the ffmpeg side of post-processing: the fixed GPU
// re-encode arguments, their yt-dlp rendering and the cached hardware encoder
// probe.
