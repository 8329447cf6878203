package contrast

import "testing"

func TestComposite(t *testing.T) {
	tests := []struct {
		name   string
		top    Color
		alpha  float64
		bottom Color
		opts   []Option
		want   Color
	}{
		{"opaque top", RGB(0.2, 0.4, 0.6), 1, White, nil, RGB(51.0/255, 102.0/255, 153.0/255)},
		{"transparent top", Black, 0, White, nil, White},
		{"half black over white rounds up", Black, 0.5, White, nil, RGB(128.0/255, 128.0/255, 128.0/255)},
		{"half black over white full precision", Black, 0.5, White, []Option{WithFullPrecision()}, RGB(0.5, 0.5, 0.5)},
		{"explicit quantization", Black, 0.5, White, []Option{WithQuantization(true)}, RGB(128.0/255, 128.0/255, 128.0/255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.top, tt.alpha, tt.bottom, tt.opts...)
			if !colorNear(got, tt.want, 1e-12) {
				t.Errorf("Composite() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestCompositeQuantizedChannelsAreIntegral checks every channel lands on
// an 8-bit step when quantization is on.
func TestCompositeQuantizedChannelsAreIntegral(t *testing.T) {
	top := RGB(0.123, 0.456, 0.789)
	bottom := RGB(0.9, 0.1, 0.3)
	for a := 0; a <= 20; a++ {
		c := Composite(top, float64(a)/20, bottom)
		for _, v := range []float64{c.R, c.G, c.B} {
			scaled := v * 255
			if d := scaled - float64(int(scaled+0.5)); d > 1e-9 || d < -1e-9 {
				t.Fatalf("alpha %v: channel %v is not on an 8-bit step", float64(a)/20, scaled)
			}
		}
	}
}

func TestCompositePair(t *testing.T) {
	bg := Sample{Color: White, Alpha: 1}
	fg := Sample{Color: Black, Alpha: 0.5}

	fgOver, bgOver := CompositePair(bg, fg)
	if want := RGB(128.0/255, 128.0/255, 128.0/255); !colorNear(fgOver, want, 1e-12) {
		t.Errorf("fgOverBg = %+v, want %+v", fgOver, want)
	}
	// Opaque background hides the foreground entirely.
	if !colorNear(bgOver, White, 1e-12) {
		t.Errorf("bgOverFg = %+v, want white", bgOver)
	}
}
