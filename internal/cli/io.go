// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/katalvlaran/matrixplus/matrixio"
)

// stdinArg selects stdin as the matrix source.
const stdinArg = "-"

// readMatrix loads a matrix document from path or stdin.
func readMatrix(cmd *cobra.Command, path string) (*matrix.Matrix, error) {
	var (
		m   *matrix.Matrix
		err error
	)
	if path == stdinArg {
		m, err = matrixio.Decode(cmd.InOrStdin())
	} else {
		m, err = matrixio.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	r, c := m.Shape()
	VerboseLog("read %s: %dx%d", path, r, c)

	return m, nil
}

// readPair loads two operands.
func readPair(cmd *cobra.Command, args []string) (*matrix.Matrix, *matrix.Matrix, error) {
	if args[0] == stdinArg && args[1] == stdinArg {
		return nil, nil, usageErrorf("stdin can feed only one operand")
	}
	a, err := readMatrix(cmd, args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := readMatrix(cmd, args[1])
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// writeMatrix prints m in the configured format.
func writeMatrix(cmd *cobra.Command, m *matrix.Matrix) error {
	f, err := matrixio.ParseFormat(settings.Output)
	if err != nil {
		return usageErrorf("%w", err)
	}

	return matrixio.Encode(cmd.OutOrStdout(), m,
		matrixio.WithFormat(f), matrixio.WithPrecision(settings.Precision))
}

// writeValue prints a named scalar (float64 or bool) in the configured format.
func writeValue(cmd *cobra.Command, name string, v interface{}) error {
	if f, ok := v.(float64); ok && settings.Precision >= 0 {
		v = json.Number(strconv.FormatFloat(f, 'f', settings.Precision, 64))
	}

	out := cmd.OutOrStdout()
	switch settings.Output {
	case "json":
		return json.NewEncoder(out).Encode(map[string]interface{}{name: v})
	case "yaml":
		if n, ok := v.(json.Number); ok {
			v = yamlNumber(n)
		}
		data, err := yaml.Marshal(map[string]interface{}{name: v})
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(out, v)
		return err
	}
}

// yamlNumber emits a pre-formatted number as a plain YAML scalar.
type yamlNumber string

// MarshalYAML implements yaml.Marshaler.
func (n yamlNumber) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(n)}, nil
}
