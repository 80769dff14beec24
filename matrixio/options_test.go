// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixplus/matrixio"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]matrixio.Format{
		"":      matrixio.FormatAuto,
		"YAML":  matrixio.FormatYAML,
		"yml":   matrixio.FormatYAML,
		"json":  matrixio.FormatJSON,
		"jsonc": matrixio.FormatJSON,
		" text": matrixio.FormatText,
	}
	for in, want := range cases {
		got, err := matrixio.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := matrixio.ParseFormat("xml")
	require.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrixio.FormatYAML, matrixio.FormatFromPath("m.YAML"))
	require.Equal(t, matrixio.FormatJSON, matrixio.FormatFromPath("/tmp/m.jsonc"))
	require.Equal(t, matrixio.FormatText, matrixio.FormatFromPath("m.txt"))
	require.Equal(t, matrixio.FormatAuto, matrixio.FormatFromPath("m"))
}

func TestWithPrecision_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrixio.WithPrecision(-2) })
	require.Panics(t, func() { matrixio.WithPrecision(matrixio.MaxPrecision + 1) })
	require.NotPanics(t, func() { matrixio.WithPrecision(-1) })
}
