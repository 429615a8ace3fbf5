package web

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]+`)
	slugCollapse = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a project's URL name from its title: lowercased, word
// characters and hyphens kept, everything else stripped, whitespace
// collapsed to single hyphens. Applying it to an existing slug returns
// the slug unchanged.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
