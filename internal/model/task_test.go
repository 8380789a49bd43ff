package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		assert.Equal(t, test.expected, task.GetETAString(), "ETASec=%d", test.etaSec)
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"", "/downloads/TT_user_clip.mp4", "https://vm.tiktok.com/abc", "TT_user_clip"},
		{"", `C:\Videos\song.mp3`, "https://youtu.be/x", "song"},
		{"https://youtu.be/x", "", "https://youtu.be/x", "https://youtu.be/x"},
	}

	for _, test := range tests {
		task := &DownloadTask{Title: test.title, OutputPath: test.output, URL: test.url}
		assert.Equal(t, test.expected, task.GetDisplayTitle())
	}
}

func TestProgressUpdate_Indeterminate(t *testing.T) {
	assert.True(t, ProgressUpdate{Percent: PercentIndeterminate}.Indeterminate())
	assert.False(t, ProgressUpdate{Percent: 0}.Indeterminate())
	assert.False(t, ProgressUpdate{Percent: 100}.Indeterminate())
}
