package candidate

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCapRawData(t *testing.T) {
	t.Run("under cap unchanged", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, CapRawData(`{"a":1}`))
	})

	t.Run("exactly at cap unchanged", func(t *testing.T) {
		s := strings.Repeat("x", MaxRawData)
		assert.Equal(t, s, CapRawData(s))
	})

	t.Run("over cap truncated with marker", func(t *testing.T) {
		s := strings.Repeat("x", MaxRawData+10)
		got := CapRawData(s)
		marker := "...[TRUNCATED - Original size: 10485770 bytes]"
		assert.True(t, strings.HasSuffix(got, marker))
		assert.Len(t, got, MaxRawData+len(marker))
	})
	t.Run("multi-byte runes are not split", func(t *testing.T) {
		s := strings.Repeat("€", MaxRawData/3+10)
		got := CapRawData(s)
		marker := fmt.Sprintf("...[TRUNCATED - Original size: %d bytes]", len(s))
		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasSuffix(got, marker))
		body := strings.TrimSuffix(got, marker)
		assert.LessOrEqual(t, len(body), MaxRawData)
		assert.Equal(t, MaxRawData/3*3, len(body))
	})
}
