// Package lang: строки интерфейса формата курса.
package lang

import (
	"fmt"
	"strings"
)

var en = map[string]string{
	"pluginname":      "TUR course menu",
	"sectionname":     "TURFORLAG",
	"section0name":    "General",
	"topic":           "Topic",
	"topicoutline":    "Topic outline",
	"currentsection":  "This topic",
	"hidefromothers":  "Hide topic",
	"showfromothers":  "Show topic",
	"markthistopic":   "Highlight this topic as the current topic",
	"markedthistopic": "This topic is highlighted as the current topic",
	"movesection":     "Move section {$a}",

	"no-section-parts-0": "Kørelektion",
	"no-section-parts-1": "I en kørelektion prøver du den gennemgåede teori af i praksis sammen med din kørelærer.",
	"no-section-parts-2": "Lektionen er taget med i oversigten for at vise hele forløbet af uddannelsen.",
}

// Get возвращает строку по ключу с подстановкой {$a}; для неизвестного ключа "[[key]]".
func Get(key string, a ...any) string {
	s, ok := en[key]
	if !ok {
		return "[[" + key + "]]"
	}
	if len(a) > 0 {
		s = strings.ReplaceAll(s, "{$a}", fmt.Sprint(a[0]))
	}
	return s
}
