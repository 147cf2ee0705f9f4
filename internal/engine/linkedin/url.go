package linkedin

import (
	"net/url"
	"regexp"
	"strings"
)

const canonicalHost = "www.linkedin.com"

// NormalizeProfileURL returns the canonical https form of a profile URL:
// linkedin.com and its country subdomains become www.linkedin.com, member
// slugs are lowercased, query, fragment and trailing slash are dropped.
// Returns "" when raw is not a usable absolute URL.
func NormalizeProfileURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + strings.TrimPrefix(s, "//")
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || strings.ContainsAny(u.Host, " \t") {
		return ""
	}
	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	u.Path = strings.TrimRight(u.Path, "/")
	if isLinkedInHost(u.Hostname()) {
		u.Host = canonicalHost
		if strings.HasPrefix(strings.ToLower(u.Path), "/in/") {
			u.Path = strings.ToLower(u.Path)
		}
	}
	u.RawPath = ""
	return u.String()
}

func isLinkedInHost(host string) bool {
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

var profileURLRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[^\s"'<>?#]+`)

// IsProfileURL reports whether s points at a member profile.
func IsProfileURL(s string) bool {
	return strings.Contains(strings.ToLower(s), "linkedin.com/in/")
}

// FindProfileURL returns the first profile URL mentioned in text, with
// trailing punctuation removed, or "".
func FindProfileURL(text string) string {
	return strings.TrimRight(profileURLRe.FindString(text), ".,;:!)]}")
}
