package text

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using go-text/typesetting.
// It reads the family name and the OS/2 weight class.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (FontInfo, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return FontInfo{}, &ParseError{Parser: "gotext", Err: err}
	}
	desc, _ := font.Describe(ld, nil)
	return FontInfo{
		Family: desc.Family,
		Weight: float64(desc.Aspect.Weight),
	}, nil
}
