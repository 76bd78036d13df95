package escape

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripTags removes every tag from s and returns the remaining text with
// entities decoded. Script and style bodies are dropped along with their tags.
func StripTags(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	cleaned := stripSanitizer().Sanitize(s)
	return html.UnescapeString(cleaned)
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
