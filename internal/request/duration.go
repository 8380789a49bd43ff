package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts "SS", "MM:SS" or "HH:MM:SS" into seconds
func ParseDuration(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has %d parts", ErrMalformedDuration, text, len(parts))
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.HasPrefix(part, "+") || strings.HasPrefix(part, "-") {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
		}
		if total > (math.MaxInt-n)/60 {
			return 0, fmt.Errorf("%w: %q overflows", ErrMalformedDuration, text)
		}
		total = total*60 + n
	}
	return total, nil
}
