package rules

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

var schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// multiPartSuffixes lists the common two-label public suffixes so that
// registrableLabel picks "paypal" out of "paypal.co.uk", not "co".
var multiPartSuffixes = map[string]struct{}{
	"co.uk":  {},
	"org.uk": {},
	"co.jp":  {},
	"co.in":  {},
	"com.au": {},
	"com.br": {},
}

// target is a parsed URL-like input. hasScheme records whether the caller wrote
// an explicit scheme, which the protocol rule needs: a bare "example.com" is
// URL-like but does not use HTTPS.
type target struct {
	*url.URL
	hasScheme bool
}

// parseTarget attempts to read the input as a single URL. Multi-word text and
// anything url.Parse rejects is reported as not URL-like; rules treat that as
// "not applicable" rather than an error.
func parseTarget(text string) (*target, bool) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return nil, false
	}

	hasScheme := schemeRE.MatchString(s)
	if !hasScheme {
		// A bare host like "paypal.com/login" still counts as URL-like
		if !strings.Contains(s, ".") {
			return nil, false
		}
		s = "//" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return nil, false
	}

	return &target{URL: u, hasScheme: hasScheme}, true
}

// hostname returns the lowercased host without port.
func (t *target) hostname() string {
	return strings.ToLower(t.Hostname())
}

// isIPHost reports whether the host is an IP literal (v4 or v6).
func isIPHost(host string) bool {
	return net.ParseIP(strings.Trim(host, "[]")) != nil
}

// tld returns the last label of the host, or "" for IP hosts.
func tld(host string) string {
	if isIPHost(host) {
		return ""
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return ""
	}
	return labels[len(labels)-1]
}

// registrableLabel extracts the label directly left of the public suffix:
// "login.paypal.co.uk" -> "paypal". Lookalike detection compares this label
// against the brand list.
func registrableLabel(host string) string {
	if isIPHost(host) {
		return ""
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return host
	}
	suffixLen := 1
	if len(labels) >= 3 {
		if _, ok := multiPartSuffixes[strings.Join(labels[len(labels)-2:], ".")]; ok {
			suffixLen = 2
		}
	}
	return labels[len(labels)-1-suffixLen]
}

// subdomainDepth counts host labels left of the registrable domain:
// "a.b.c.example.com" -> 3.
func subdomainDepth(host string) int {
	if isIPHost(host) {
		return 0
	}
	labels := strings.Split(host, ".")
	suffixLen := 1
	if len(labels) >= 3 {
		if _, ok := multiPartSuffixes[strings.Join(labels[len(labels)-2:], ".")]; ok {
			suffixLen = 2
		}
	}
	depth := len(labels) - suffixLen - 1
	if depth < 0 {
		return 0
	}
	return depth
}

// containsAny checks if text contains any of the keywords
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}
