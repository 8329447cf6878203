package contrast

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	large := &TextContext{FontSize: 24}
	heavy := &TextContext{FontSize: 14, Heavy: true}
	small := &TextContext{FontSize: 12, Heavy: true}

	tests := []struct {
		name  string
		ratio float64
		text  *TextContext
		want  Classification
	}{
		{"4.4 no text", 4.4, nil, AAFailed},
		{"4.5 no text", 4.5, nil, AAPassed},
		{"4.5 large upgrades to AAA large", 4.5, large, AAAPassedLarge},
		{"4.5 heavy upgrades to AAA large", 4.5, heavy, AAAPassedLarge},
		{"7.0 no text", 7.0, nil, AAAPassed},
		{"7.0 large", 7.0, large, AAAPassed},
		{"3.0 large", 3.0, large, AAPassedLarge},
		{"3.0 no text", 3.0, nil, AAFailed},
		{"2.9 large", 2.9, large, AAFailed},
		{"3.5 small heavy", 3.5, small, AAFailed},
		{"6.9 no text", 6.9, nil, AAPassed},
		{"1.0", 1.0, nil, AAFailed},
		{"21.0 heavy", 21.0, heavy, AAAPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ratio, tt.text); got != tt.want {
				t.Errorf("Classify(%v, %+v) = %v, want %v", tt.ratio, tt.text, got, tt.want)
			}
		})
	}
}

func TestLargeOrHeavy(t *testing.T) {
	tests := []struct {
		name string
		text *TextContext
		want bool
	}{
		{"nil", nil, false},
		{"18pt regular", &TextContext{FontSize: 18}, false},
		{"18.5pt regular", &TextContext{FontSize: 18.5}, true},
		{"14pt heavy", &TextContext{FontSize: 14, Heavy: true}, true},
		{"13.9pt heavy", &TextContext{FontSize: 13.9, Heavy: true}, false},
		{"14pt regular", &TextContext{FontSize: 14}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.LargeOrHeavy(); got != tt.want {
				t.Errorf("LargeOrHeavy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassificationText(t *testing.T) {
	for c := AAFailed; c <= AAAPassed; c++ {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatalf("%d.MarshalText() error = %v", c, err)
		}
		var back Classification
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", b, err)
		}
		if back != c {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, back, c)
		}
	}

	var c Classification
	if err := c.UnmarshalText([]byte("AA_Maybe")); err == nil {
		t.Error("UnmarshalText(AA_Maybe) succeeded, want error")
	}
	if _, err := Classification(42).MarshalText(); err == nil {
		t.Error("Classification(42).MarshalText() succeeded, want error")
	}
}

func TestClassificationJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		C Classification `json:"c"`
	}{AAAPassedLarge})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"c":"AAA_Passed_Large"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}

func TestClassificationPresentation(t *testing.T) {
	tests := []struct {
		c      Classification
		badge  string
		label  string
		passed bool
	}{
		{AAFailed, "❌", "AA Failed", false},
		{AAPassedLarge, "⚠️", "AA passed (large or bold/medium text)", true},
		{AAPassed, "✅", "AA passed", true},
		{AAAPassedLarge, "⚠️", "AAA passed (large or bold/medium text)", true},
		{AAAPassed, "✅", "AAA passed", true},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.Badge(); got != tt.badge {
				t.Errorf("Badge() = %q, want %q", got, tt.badge)
			}
			if got := tt.c.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.c.Passed(); got != tt.passed {
				t.Errorf("Passed() = %v, want %v", got, tt.passed)
			}
		})
	}

	if got := Classification(9).String(); got != "Classification(9)" {
		t.Errorf("String() = %q", got)
	}
}
