package dex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName renders a kebab-case catalog key for narration:
// "mr-mime" becomes "Mr Mime", "freeze-dry" becomes "Freeze Dry".
func DisplayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "-", " "))
}
