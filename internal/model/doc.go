package model

// Package model defines domain data structures used across the app: platforms,
// quality labels, validated download requests, the yt-dlp download spec, the
// in-flight task and its progress updates. Requests are immutable values; tasks
// carry explicit state transitions.
