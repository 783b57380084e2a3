package contact

import (
	"html"
	"regexp"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	spamPatterns      = []*regexp.Regexp{
		regexp.MustCompile(`https?://\S+`),
		regexp.MustCompile(`buy now`),
		regexp.MustCompile(`click here`),
		regexp.MustCompile(`limited time`),
		regexp.MustCompile(`free money`),
		regexp.MustCompile(`make money fast`),
		regexp.MustCompile(`casino`),
		regexp.MustCompile(`viagra`),
		regexp.MustCompile(`pills`),
	}
)

// minUniqueRatio is the share of distinct words a message longer than repetitionMinWords
// must contain.
const (
	minUniqueRatio     = 0.3
	repetitionMinWords = 5
)

// ValidEmail does a basic shape check of an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsSpam flags links, common spam phrases and heavily repeated text.
func IsSpam(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range spamPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	words := strings.Fields(lower)
	if len(words) > repetitionMinWords {
		unique := make(map[string]struct{}, len(words))
		for _, word := range words {
			unique[word] = struct{}{}
		}

		if float64(len(unique)) < float64(len(words))*minUniqueRatio {
			return true
		}
	}

	return false
}

// Sanitize escapes html and collapses runs of whitespace.
func Sanitize(value string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(html.EscapeString(value), " "))
}
