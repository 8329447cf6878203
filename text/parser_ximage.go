package text

import (
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
// It reads the name table only; Weight is left unknown.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (FontInfo, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return FontInfo{}, &ParseError{Parser: "ximage", Err: err}
	}

	var buf sfnt.Buffer
	name := func(id sfnt.NameID) string {
		s, err := f.Name(&buf, id)
		if err != nil {
			return ""
		}
		return s
	}

	return FontInfo{
		Family:         name(sfnt.NameIDFamily),
		FullName:       name(sfnt.NameIDFull),
		PostScriptName: name(sfnt.NameIDPostScript),
	}, nil
}
