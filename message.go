package contrast

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// String returns the English report line for r, e.g. "✅ AA passed  4.5:1".
func (r Result) String() string {
	return r.Message(language.English)
}

// Message returns the report line for r with the ratio formatted for tag,
// e.g. "✅ AA passed  4,5:1" for German.
func (r Result) Message(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%s %s  %.1f:1", r.Classification.Badge(), r.Classification.Label(), r.Ratio)
}
