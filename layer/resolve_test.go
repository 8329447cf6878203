package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/contrast"
)

func solid(c contrast.Color) []Fill {
	return []Fill{{Color: c, Alpha: 1, Enabled: true}}
}

func TestResolveTwoShapes(t *testing.T) {
	bg := Shape{Name: "card", Fills: []Fill{{Color: contrast.White, Alpha: 0.8, Enabled: true}}, Opacity: 0.5}
	fg := Shape{Name: "icon", Fills: solid(contrast.Black), Opacity: 0.25}

	req, err := Resolve([]Element{bg, fg}, nil)
	require.NoError(t, err)

	assert.Equal(t, contrast.White, req.Background.Color)
	assert.InDelta(t, 0.4, req.Background.Alpha, 1e-12)
	assert.Equal(t, contrast.Black, req.Foreground.Color)
	assert.InDelta(t, 0.25, req.Foreground.Alpha, 1e-12)
	assert.Nil(t, req.Text)
}

func TestResolveSingleAgainstArtboard(t *testing.T) {
	fg := Text{
		Name:           "title",
		TextColor:      contrast.Black,
		ColorAlpha:     0.5,
		Opacity:        0.5,
		FontSize:       16,
		PostScriptName: "Inter-Bold",
	}
	board := &Artboard{Background: contrast.White, Alpha: 1}

	req, err := Resolve([]Element{fg}, board)
	require.NoError(t, err)

	assert.Equal(t, contrast.Sample{Color: contrast.White, Alpha: 1}, req.Background)
	assert.InDelta(t, 0.25, req.Foreground.Alpha, 1e-12)
	require.NotNil(t, req.Text)
	assert.Equal(t, 16.0, req.Text.FontSize)
	assert.True(t, req.Text.Heavy)
}

func TestResolveArtboardAlphaNotScaled(t *testing.T) {
	board := &Artboard{Background: contrast.White, Alpha: 0.3}
	req, err := Resolve([]Element{Shape{Fills: solid(contrast.Black), Opacity: 1}}, board)
	require.NoError(t, err)
	assert.Equal(t, 0.3, req.Background.Alpha)
}

func TestResolveTextUsesEnabledFill(t *testing.T) {
	red := contrast.RGB(1, 0, 0)
	tests := []struct {
		name string
		text Text
		want contrast.Color
	}{
		{
			name: "no fill",
			text: Text{TextColor: red, ColorAlpha: 1, Opacity: 1},
			want: red,
		},
		{
			name: "disabled fill",
			text: Text{TextColor: red, ColorAlpha: 1, Opacity: 1, Fills: []Fill{{Color: contrast.Black, Alpha: 1}}},
			want: red,
		},
		{
			name: "enabled fill",
			text: Text{TextColor: red, ColorAlpha: 1, Opacity: 1, Fills: solid(contrast.Black)},
			want: contrast.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Resolve([]Element{Shape{Fills: solid(contrast.White), Opacity: 1}, tt.text}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Foreground.Color)
		})
	}
}

func TestResolveLastTextWins(t *testing.T) {
	bg := &Text{TextColor: contrast.White, ColorAlpha: 1, Opacity: 1, FontSize: 30, PostScriptName: "Inter-Regular"}
	fg := Text{TextColor: contrast.Black, ColorAlpha: 1, Opacity: 1, FontSize: 12, PostScriptName: "Inter-Medium"}

	req, err := Resolve([]Element{bg, fg}, nil)
	require.NoError(t, err)
	require.NotNil(t, req.Text)
	assert.Equal(t, 12.0, req.Text.FontSize)
	assert.True(t, req.Text.Heavy)

	// With the text element first, it still supplies the context.
	req, err = Resolve([]Element{bg, Shape{Fills: solid(contrast.Black), Opacity: 1}}, nil)
	require.NoError(t, err)
	require.NotNil(t, req.Text)
	assert.Equal(t, 30.0, req.Text.FontSize)
	assert.False(t, req.Text.Heavy)
}

func TestResolveInvalidSelection(t *testing.T) {
	board := &Artboard{Background: contrast.White, Alpha: 1}
	shape := Shape{Fills: solid(contrast.Black), Opacity: 1}

	tests := []struct {
		name      string
		selection []Element
		artboard  *Artboard
		target    error
	}{
		{"empty", nil, board, ErrInvalidSelection},
		{"three", []Element{shape, shape, shape}, board, ErrInvalidSelection},
		{"single without artboard", []Element{shape}, nil, ErrNoArtboard},
		{"shape without fill", []Element{Shape{Name: "ghost", Opacity: 1}}, board, ErrMissingColor},
		{"shape without fill is invalid color", []Element{Shape{Name: "ghost", Opacity: 1}}, board, contrast.ErrInvalidColor},
		{"background without fill", []Element{Shape{Opacity: 1}, shape}, nil, ErrMissingColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.selection, tt.artboard)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := Resolve([]Element{shape}, nil)
	assert.ErrorIs(t, err, ErrInvalidSelection, "ErrNoArtboard must match ErrInvalidSelection")
}

func TestMissingColorError(t *testing.T) {
	_, err := Resolve([]Element{Shape{Name: "ghost", Opacity: 1}}, &Artboard{Alpha: 1})

	var mcErr *MissingColorError
	require.ErrorAs(t, err, &mcErr)
	assert.Equal(t, "ghost", mcErr.Name)
	assert.Equal(t, KindShape, mcErr.Kind)
	assert.Contains(t, err.Error(), `shape "ghost" has no fill`)
	assert.ErrorIs(t, err, ErrMissingColor)
	assert.ErrorIs(t, err, contrast.ErrInvalidColor)
	assert.NotErrorIs(t, err, ErrInvalidSelection)
}

func TestRequestCompute(t *testing.T) {
	req, err := Resolve(
		[]Element{
			Shape{Fills: solid(contrast.White), Opacity: 1},
			Text{TextColor: contrast.Black, ColorAlpha: 1, Opacity: 0.5, FontSize: 20, PostScriptName: "Inter-Regular"},
		},
		nil,
	)
	require.NoError(t, err)

	res, err := req.Compute()
	require.NoError(t, err)
	assert.Equal(t, 3.9, res.Ratio)
	assert.Equal(t, contrast.AAPassedLarge, res.Classification)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "shape", KindShape.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", Kind(7).String())
	assert.Equal(t, KindText, Text{}.Kind())
	assert.Equal(t, KindShape, Shape{}.Kind())
}

func TestResolveHeavyOverride(t *testing.T) {
	fg := Text{TextColor: contrast.Black, ColorAlpha: 1, Opacity: 1, FontSize: 14, PostScriptName: "CustomFace", Heavy: true}
	req, err := Resolve([]Element{fg}, &Artboard{Background: contrast.White, Alpha: 1})
	require.NoError(t, err)
	require.NotNil(t, req.Text)
	assert.True(t, req.Text.Heavy)
}
