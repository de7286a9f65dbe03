package latitude

import (
	"fmt"
	"testing"

	"github.com/1F47E/sol/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected models.Latitude
	}{
		{"degrees and north", "42 N", models.Latitude{Degrees: 42, Hemisphere: models.North}},
		{"degrees and south", "42 S", models.Latitude{Degrees: 42, Hemisphere: models.South}},
		{"decimal minutes", "42.5 N", models.Latitude{Degrees: 42, Hemisphere: models.North}},
		{"comma separated", "42,5,N", models.Latitude{Degrees: 42, Hemisphere: models.North}},
		{"apostrophe minutes", "37'21 N", models.Latitude{Degrees: 37, Hemisphere: models.North}},
		{"minutes and seconds", "51 30 26 N", models.Latitude{Degrees: 51, Hemisphere: models.North}},
		{"repeated delimiters", "  33,, ' S ", models.Latitude{Degrees: 33, Hemisphere: models.South}},
		{"degrees only", "10", models.Latitude{Degrees: 10}},
		{"zero", "0", models.Latitude{Degrees: 0}},
		{"pole", "90 S", models.Latitude{Degrees: 90, Hemisphere: models.South}},
		{"unknown direction keeps degrees", "42 E", models.Latitude{Degrees: 42}},
		{"minutes read as direction", "42.5", models.Latitude{Degrees: 42}},
		{"spelled out direction", "42 North", models.Latitude{Degrees: 42}},
		{"garbage", "garbage", models.SentinelLatitude},
		{"empty", "", models.SentinelLatitude},
		{"only delimiters", " .,' ", models.SentinelLatitude},
		{"out of range", "91 N", models.SentinelLatitude},
		{"overflows a byte", "300 N", models.SentinelLatitude},
		{"negative", "-42 N", models.SentinelLatitude},
		{"plus sign", "+42 N", models.SentinelLatitude},
		{"direction first", "N 42", models.SentinelLatitude},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.input))
		})
	}
}

func TestParseStrictReasons(t *testing.T) {
	lat, err := ParseStrict("")
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, models.SentinelLatitude, lat)

	lat, err = ParseStrict("abc N")
	assert.ErrorIs(t, err, ErrDegrees)
	assert.Equal(t, models.SentinelLatitude, lat)
	assert.Contains(t, err.Error(), `"abc"`)

	_, err = ParseStrict("95")
	assert.ErrorIs(t, err, ErrDegrees)
	assert.Contains(t, err.Error(), "95")

	lat, err = ParseStrict("42 X")
	require.NoError(t, err)
	assert.Equal(t, models.HemisphereUnspecified, lat.Hemisphere)
}

func TestParseDirectionCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.North, ParseDirection("n"))
	assert.Equal(t, models.North, ParseDirection("N"))
	assert.Equal(t, models.South, ParseDirection("s"))
	assert.Equal(t, models.South, ParseDirection("S"))
	assert.Equal(t, models.HemisphereUnspecified, ParseDirection("W"))
	assert.Equal(t, models.HemisphereUnspecified, ParseDirection(""))

	for _, d := range []string{"n", "N", "s", "S"} {
		lat := Parse("12 " + d)
		assert.Equal(t, ParseDirection(d), lat.Hemisphere, "direction %q", d)
	}
}

func TestParseDegreesAlwaysInRange(t *testing.T) {
	inputs := []string{"0", "90", "91", "255", "256", "-1", "1e2", "0x10", "٤٢", "12abc", "99999999999999999999"}
	for i := 0; i <= 300; i += 7 {
		inputs = append(inputs, fmt.Sprintf("%d N", i), fmt.Sprintf("%d'%d S", i, i))
	}

	for _, in := range inputs {
		lat := Parse(in)
		assert.LessOrEqual(t, lat.Degrees, uint8(MaxDegrees), "input %q", in)
	}
}

func TestParseDeterministic(t *testing.T) {
	for _, in := range []string{"42 N", "garbage", "37'21 s", ""} {
		assert.Equal(t, Parse(in), Parse(in))
	}
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{"42 N", "42.5 N", "42,5,N", "37'21 N", "garbage"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(inputs[i%len(inputs)])
	}
}
