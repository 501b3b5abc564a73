package graph

import (
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailRx.MatchString(strings.TrimSpace(s))
}

func minLen(s string, n int) bool {
	return len([]rune(strings.TrimSpace(s))) >= n
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
