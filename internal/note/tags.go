package note

import (
	"regexp"
	"strings"

	"github.com/lib/pq"
)

var hashtagRe = regexp.MustCompile(`#([a-zA-Z0-9_]{1,32})`)

func ExtractTags(content string) []string {
	matches := hashtagRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(matches))

	for _, m := range matches {
		t := strings.ToLower(m[1])
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)

		if len(out) >= 20 { // cap
			break
		}
	}

	return out
}

// HasTag reports whether n carries tag (case-insensitive).
func (n Note) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func tagsFor(content string) pq.StringArray {
	tags := ExtractTags(content)
	if tags == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(tags)
}
