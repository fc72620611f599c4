package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// countNoun formats n with locale-aware digit grouping and a trailing "s"
// when n != 1, e.g. "1 key" / "1,024 keys".
func countNoun(n int, noun string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, noun)
	}
	return printer.Sprintf("%d %ss", n, noun)
}
