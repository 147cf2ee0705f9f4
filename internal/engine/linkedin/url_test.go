package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"linkedin.com/in/jane-doe/", "https://www.linkedin.com/in/jane-doe"},
		{"https://linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"https://de.linkedin.com/in/Jane-Doe/", "https://www.linkedin.com/in/jane-doe"},
		{"https://www.linkedin.com/company/Acme", "https://www.linkedin.com/company/Acme"},
		{"https://example.com/in/Jane", "https://example.com/in/Jane"},
		{"http://WWW.LinkedIn.com/in/jane-doe?trk=abc#top", "https://www.linkedin.com/in/jane-doe"},
		{"  https://www.linkedin.com/in/jane-doe/  ", "https://www.linkedin.com/in/jane-doe"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProfileURL(tt.in))
		})
	}
}

func TestFindProfileURL(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "Profile: https://www.linkedin.com/in/jane-doe.", "https://www.linkedin.com/in/jane-doe"},
		{"no scheme", "see linkedin.com/in/jane-doe) for more", "linkedin.com/in/jane-doe"},
		{"query dropped", "https://linkedin.com/in/jane?trk=x", "https://linkedin.com/in/jane"},
		{"company page", "https://www.linkedin.com/company/acme", ""},
		{"none", "no link here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindProfileURL(tt.in))
		})
	}
	assert.True(t, IsProfileURL("https://www.LinkedIn.com/in/jane"))
	assert.False(t, IsProfileURL("https://www.linkedin.com/company/acme"))
}
