package candidate

import (
	"fmt"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

// MaxRawData caps the stored rawData blob.
const MaxRawData = 10 * 1024 * 1024

// CapRawData truncates s to at most MaxRawData bytes, never splitting a
// rune, and appends a marker carrying the original size.
func CapRawData(s string) string {
	if len(s) <= MaxRawData {
		return s
	}
	return engine.Truncate(s, MaxRawData) + fmt.Sprintf("...[TRUNCATED - Original size: %d bytes]", len(s))
}
