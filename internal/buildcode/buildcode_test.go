package buildcode

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Shape(t *testing.T) {
	b := Build{
		ChampionID: 122,
		Level:      18,
		Items:      [6]int{3078, 3142, 3047, 0, 0, 0},
		Runes:      [8]int{8000, 8200, 8010, 9111, 9104, 8014, 8236, 8135},
		ShardRows:  [3]int{0, 2, 2},
	}
	s := Encode(b)
	assert.Equal(t, "122.18.3078-3142-3047-0-0-0.8000.8200.8010.9111.9104.8014.8236.8135.0.2.2", s)
	assert.Len(t, strings.Split(s, "."), 14)
}

func TestRoundTrip_RandomBuilds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		b := Build{
			ChampionID: rng.Intn(900) + 1,
			Level:      rng.Intn(18) + 1,
		}
		for j := range b.Items {
			if rng.Intn(3) > 0 { // leave some slots empty
				b.Items[j] = rng.Intn(7000) + 1000
			}
		}
		for j := range b.Runes {
			b.Runes[j] = rng.Intn(2000) + 8000
		}
		for j := range b.ShardRows {
			b.ShardRows[j] = rng.Intn(3)
		}

		got, err := Decode(Encode(b))
		require.NoError(t, err, "build %d: %s", i, Encode(b))
		require.Equal(t, b, got, "round trip %d", i)
	}
}

func TestDecode_RejectsTooFewSegments(t *testing.T) {
	_, err := Decode("122.18.0-0-0-0-0-0.1.2.3")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Decode("")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_RejectsNonNumeric(t *testing.T) {
	cases := []string{
		"abc.18.0-0-0-0-0-0.1.2.3.4.5.6.7.8.0.0.0",
		"122.xx.0-0-0-0-0-0.1.2.3.4.5.6.7.8.0.0.0",
		"122.18.a-0-0-0-0-0.1.2.3.4.5.6.7.8.0.0.0",
		"122.18.0-0-0-0-0-0.nope.2.3.4.5.6.7.8.0.0.0",
		"122.18.0-0-0-0-0-0.1.2.3.4.5.6.7.8.x.0.0",
	}
	for _, s := range cases {
		_, err := Decode(s)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", s)
	}
}

func TestDecode_ClampsLevel(t *testing.T) {
	b, err := Decode("122.99.0-0-0-0-0-0.1.2.3.4.5.6.7.8.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, 18, b.Level)

	b, err = Decode("122.0.0-0-0-0-0-0.1.2.3.4.5.6.7.8.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Level)
}

func TestDecode_InvalidShardIndexMapsToZero(t *testing.T) {
	b, err := Decode("122.10.0-0-0-0-0-0.1.2.3.4.5.6.7.8.5.-1.2")
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 0, 2}, b.ShardRows)
}

func TestDecode_ShortItemSegment(t *testing.T) {
	// Fewer than six dash fields: remaining slots stay empty.
	b, err := Decode("122.10.3078-3142.1.2.3.4.5.6.7.8.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, [6]int{3078, 3142, 0, 0, 0, 0}, b.Items)
}

func TestEncode_ClampsLevel(t *testing.T) {
	s := Encode(Build{ChampionID: 1, Level: 40})
	b, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 18, b.Level)
}

func ExampleEncode() {
	fmt.Println(Encode(Build{ChampionID: 67, Level: 11}))
	// Output: 67.11.0-0-0-0-0-0.0.0.0.0.0.0.0.0.0.0.0
}
