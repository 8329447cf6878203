// Command contrastcheck reports the WCAG 2.0 contrast ratio of color pairs.
//
// Usage:
//
//	contrastcheck check --bg "#ffffff" --fg "#767676" --size 16
//	contrastcheck check --artboard white --fg "#00000080" --font Inter-Bold --size 14
//	contrastcheck batch checks.yaml --strict --format json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
