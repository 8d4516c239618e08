// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFilterFormSize is the maximum size for the filter form submission.
	// The form carries a filter, a sort list and the hidden flag.
	MaxFilterFormSize = 4 << 10 // 4 KB
)
