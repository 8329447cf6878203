// Package text derives the text metrics used by contrast classification
// from font names and font files.
//
// WCAG treats bold and medium text of at least 14pt as large. Whether a
// face counts as heavy is decided from its PostScript name (the convention
// design tools follow) or, when the parser can read it, from the OS/2 weight
// class of the font file.
//
// # Example usage
//
//	data, err := os.ReadFile("Inter-SemiBold.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, err := text.Inspect(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := contrast.Compute(bg, fg, info.TextContext(16))
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used, which reads the
// name table. The "gotext" parser uses go-text/typesetting and also reads
// the weight class:
//
//	info, err := text.Inspect(data, text.WithParser("gotext"))
//
// Custom parsers can be registered with RegisterParser.
package text
