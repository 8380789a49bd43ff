package model

import "strings"

// QualityLabel is one of the fixed quality choices offered to the user
type QualityLabel string

const (
	QualityBest   QualityLabel = "Best Available"
	Quality720p   QualityLabel = "720p"
	Quality1080p  QualityLabel = "1080p"
	Quality1440p  QualityLabel = "1440p"
	Quality2160p  QualityLabel = "2160p (4K)"
	Quality4320p  QualityLabel = "4320p (8K)"
	Quality15360p QualityLabel = "15360p (16K)"
)

// DefaultQuality is preselected in both front-ends
const DefaultQuality = Quality1080p

var qualityHeights = map[QualityLabel]int{
	QualityBest:   0,
	Quality720p:   720,
	Quality1080p:  1080,
	Quality1440p:  1440,
	Quality2160p:  2160,
	Quality4320p:  4320,
	Quality15360p: 15360,
}

// QualityLabels returns all labels in display order
func QualityLabels() []QualityLabel {
	return []QualityLabel{
		QualityBest,
		Quality720p,
		Quality1080p,
		Quality1440p,
		Quality2160p,
		Quality4320p,
		Quality15360p,
	}
}

// QualityOptions returns the labels as plain strings for select widgets
func QualityOptions() []string {
	labels := QualityLabels()
	options := make([]string, len(labels))
	for i, l := range labels {
		options[i] = string(l)
	}
	return options
}

// IsValid reports whether the label belongs to the enumeration
func (q QualityLabel) IsValid() bool {
	_, ok := qualityHeights[q]
	return ok
}

// Height returns the vertical resolution cap, 0 meaning no cap
func (q QualityLabel) Height() int {
	return qualityHeights[q]
}

// ParseQuality accepts a full label or its short form ("best", "2160p"),
// ignoring case. Anything else is returned unchanged so validation rejects it.
func ParseQuality(s string) QualityLabel {
	s = strings.TrimSpace(s)
	for _, l := range QualityLabels() {
		full := string(l)
		short, _, _ := strings.Cut(full, " ")
		if strings.EqualFold(s, full) || strings.EqualFold(s, short) {
			return l
		}
	}
	return QualityLabel(s)
}
