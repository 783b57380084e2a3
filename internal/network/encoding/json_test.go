package encoding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leighmacdonald/folio/internal/network/encoding"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encoding.MarshalJSON(&buf, sample{Name: "folio"}))

	value, err := encoding.UnmarshalJSON[sample](&buf)
	require.NoError(t, err)
	require.Equal(t, "folio", value.Name)
}

func TestStrict(t *testing.T) {
	_, err := encoding.UnmarshalStrictJSON[sample](strings.NewReader(`{"name":"x","extra":1}`))
	require.ErrorIs(t, err, encoding.ErrDecodeJSON)

	value, errLoose := encoding.UnmarshalJSON[sample](strings.NewReader(`{"name":"x","extra":1}`))
	require.NoError(t, errLoose)
	require.Equal(t, "x", value.Name)

	_, errBad := encoding.UnmarshalJSON[sample](strings.NewReader(`{`))
	require.ErrorIs(t, errBad, encoding.ErrDecodeJSON)
}
