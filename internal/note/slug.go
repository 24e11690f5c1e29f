package note

import (
	"regexp"
	"strings"
)

var (
	slugStripRe = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe = regexp.MustCompile(`\s+`)
)

// Slug builds the URL-friendly handle the browser uses for a note:
// the first 20 characters of the content, lowercased, punctuation dropped,
// whitespace runs turned into dashes.
func Slug(content string) string {
	r := []rune(content)
	if len(r) > 20 {
		r = r[:20]
	}
	s := strings.ToLower(string(r))
	s = slugStripRe.ReplaceAllString(s, "")
	return slugSpaceRe.ReplaceAllString(s, "-")
}

func (n Note) Slug() string { return Slug(n.Content) }
