package combin

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCount renders a combination count for humans: "500",
// "1.5 thousand", "2.0 billion". The overflow sentinel math.MaxUint64
// renders as "too many to count"; it never panics on any input.
func FormatCount(count uint64) string {
	if count == math.MaxUint64 {
		return "too many to count"
	}
	if count < 1000 {
		return strconv.FormatUint(count, 10)
	}

	units := []string{"", "thousand", "million", "billion", "trillion"}
	i := int(math.Log(float64(count)) / math.Log(1000))
	if i > len(units)-1 {
		i = len(units) - 1
	}

	return fmt.Sprintf("%.1f %s", float64(count)/math.Pow(1000, float64(i)), units[i])
}

// FormatFileSize renders a byte count with binary units: "500 B",
// "1.5 KB", "1.0 GB".
func FormatFileSize(bytes uint64) string {
	if bytes == 0 {
		return "0 B"
	}
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	i := int(math.Log(float64(bytes)) / math.Log(1024))
	if i > len(units)-1 {
		i = len(units) - 1
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/math.Pow(1024, float64(i)), units[i])
}
