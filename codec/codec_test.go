package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	A int    `json:"a"`
	B string `json:"b"`
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := pair{A: 42, B: "hello"}
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out pair
			require.NoError(t, c.Unmarshal(b, &out))
			require.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		c, ok := ByName(tt.name)
		require.Equal(t, tt.want, ok, tt.name)
		if ok {
			require.Equal(t, tt.name, c.Name())
		}
	}
}

func TestCodecsAgree(t *testing.T) {
	// Both JSON codecs must produce interchangeable bytes: a snapshot written
	// with go-json must decode with encoding/json and vice versa.
	in := pair{A: 7, B: "x"}

	b := MustMarshal(GoJSON{}, in)
	var out pair
	require.NoError(t, JSON{}.Unmarshal(b, &out))
	require.Equal(t, in, out)
}
