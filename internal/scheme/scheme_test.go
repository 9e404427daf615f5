package scheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themeforge/internal/color"
)

func testRamps(t *testing.T) map[string]*color.Ramp {
	t.Helper()

	neutral, err := color.NewRamp([]color.Color{color.MustParse("#000000"), color.MustParse("#ffffff")})
	require.NoError(t, err)

	ramps := map[string]*color.Ramp{Neutral: neutral}
	hues := map[string]string{
		Red:     "#b4637a",
		Orange:  "#d7827e",
		Yellow:  "#ea9d34",
		Green:   "#56949f",
		Cyan:    "#56949f",
		Blue:    "#286983",
		Violet:  "#907aa9",
		Magenta: "#c4a7e7",
	}
	for role, hex := range hues {
		ramps[role] = color.ExpandRamp(color.MustParse(hex))
	}
	return ramps
}

func TestBuildDarkSamplesBackgroundLowTextHigh(t *testing.T) {
	s, err := Build("test", Dark, testRamps(t))
	require.NoError(t, err)

	require.Equal(t, "#000000", s.Background.Base.String())
	require.Less(t, s.Background.Base.Lightness(), 0.1)
	require.Greater(t, s.Text.Primary.Lightness(), 0.8)
	require.Equal(t, "#ffffff", s.Text.Active.String())
}

func TestBuildLightInvertsSampling(t *testing.T) {
	ramps := testRamps(t)
	dark, err := Build("test", Dark, ramps)
	require.NoError(t, err)
	light, err := Build("test", Light, ramps)
	require.NoError(t, err)

	require.Equal(t, "#ffffff", light.Background.Base.String())
	require.Greater(t, light.Background.Base.Lightness(), 0.9)
	require.Less(t, light.Text.Primary.Lightness(), 0.2)

	require.Greater(t, light.Background.Base.Lightness(), dark.Background.Base.Lightness())
	require.Less(t, light.Text.Primary.Lightness(), dark.Text.Primary.Lightness())
	require.Greater(t, light.Background.Panel.Base.Lightness(), dark.Background.Panel.Base.Lightness())
}

func TestBuildDoesNotMutateInputRamps(t *testing.T) {
	ramps := testRamps(t)
	before := ramps[Neutral].Sample(0)

	_, err := Build("test", Light, ramps)
	require.NoError(t, err)
	require.Equal(t, before, ramps[Neutral].Sample(0))
}

func TestBuildMissingRamp(t *testing.T) {
	ramps := testRamps(t)
	delete(ramps, Violet)

	_, err := Build("test", Dark, ramps)
	var missing *MissingRampError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, Violet, missing.Role)
	require.Contains(t, err.Error(), "violet")
}

func TestPlayers(t *testing.T) {
	s, err := Build("test", Dark, testRamps(t))
	require.NoError(t, err)

	require.Len(t, s.Players, PlayerCount)
	for i, p := range s.Players {
		require.Equal(t, 1.0, p.Cursor.Alpha(), "player %d", i)
		require.Less(t, p.Selection.Alpha(), p.Cursor.Alpha(), "player %d", i)
		require.Equal(t, p.Cursor.Hex(), p.Selection.Hex(), "player %d", i)
	}
	require.Equal(t, s.Sample(Blue, 0.5), s.Players[0].Cursor)
	require.Equal(t, s.Sample(Yellow, 0.5), s.Players[7].Cursor)
}

func TestSyntaxSharesColorFamilies(t *testing.T) {
	s, err := Build("test", Dark, testRamps(t))
	require.NoError(t, err)

	keyword, ok := s.Syntax.Lookup("keyword")
	require.True(t, ok)
	property, ok := s.Syntax.Lookup("property")
	require.True(t, ok)
	require.Equal(t, keyword, property)

	strong, ok := s.Syntax.Lookup("emphasis.strong")
	require.True(t, ok)
	require.Equal(t, keyword.Color, strong.Color)
	require.Equal(t, WeightBold, strong.Weight)

	link, ok := s.Syntax.Lookup("linkUri")
	require.True(t, ok)
	require.True(t, link.Underline)

	_, ok = s.Syntax.Lookup("nope")
	require.False(t, ok)
}

func TestParseAppearance(t *testing.T) {
	a, err := ParseAppearance(" Light ")
	require.NoError(t, err)
	require.Equal(t, Light, a)

	_, err = ParseAppearance("dim")
	require.Error(t, err)
}
