package utils

import "fmt"

// FormatStorage renders a byte count the way the gallery UI expects:
// plain bytes below 1 KiB, one-decimal kilobytes below 1 MiB, otherwise
// one-decimal megabytes. No larger units.
func FormatStorage(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024.0*1024.0))
}
