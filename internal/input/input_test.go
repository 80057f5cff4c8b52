// SPDX-License-Identifier: MIT

package input_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/internal/input"
)

var scenario = [][]float64{
	{82, 83, 69},
	{77, 37, 49},
	{11, 69, 5},
}

func TestReadFile_AllFormats(t *testing.T) {
	cases := map[string]string{
		"scenario.json": "max",
		"scenario.yaml": "min",
		"scenario.toml": "min",
		"scenario.csv":  "",
	}
	for name, objective := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := input.ReadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Equal(t, scenario, doc.Matrix)
			require.Equal(t, objective, doc.Objective)
		})
	}
}

func TestParse_Sniff(t *testing.T) {
	docs := []string{
		`[[82, 83, 69], [77, 37, 49], [11, 69, 5]]`,
		`{"matrix": [[82, 83, 69], [77, 37, 49], [11, 69, 5]]}`,
		"matrix = [[82, 83, 69], [77, 37, 49], [11, 69, 5]]",
		"matrix:\n  - [82, 83, 69]\n  - [77, 37, 49]\n  - [11, 69, 5]\n",
		"- [82, 83, 69]\n- [77, 37, 49]\n- [11, 69, 5]\n",
		"82,83,69\n77,37,49\n11,69,5\n",
	}
	for _, d := range docs {
		doc, err := input.Parse(strings.NewReader(d), input.FormatAuto)
		require.NoError(t, err, d)
		require.Equal(t, scenario, doc.Matrix, d)
	}

	_, err := input.Parse(strings.NewReader("   "), input.FormatAuto)
	require.ErrorIs(t, err, input.ErrFormat)
}

func TestParse_Errors(t *testing.T) {
	_, err := input.Parse(strings.NewReader(`{"matrix": "nope"}`), input.FormatJSON)
	require.ErrorIs(t, err, input.ErrFormat)

	_, err = input.Parse(strings.NewReader("1,x\n3,4\n"), input.FormatCSV)
	require.ErrorIs(t, err, input.ErrInvalidValue)
	require.Contains(t, err.Error(), "[1, 2]")
}

func TestParseInline(t *testing.T) {
	rows, err := input.ParseInline("1,2;3,4")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows, err = input.ParseInline(" 1.5 -2 ; 3 4e2; ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5, -2}, {3, 400}}, rows)

	rows, err = input.ParseInline("1,,3;4,5,6;7,8,9")
	require.NoError(t, err)
	require.Equal(t, 0.0, rows[0][1], "empty cells read as zero")

	_, err = input.ParseInline("")
	require.ErrorIs(t, err, input.ErrEmpty)

	_, err = input.ParseInline("1,2;3,four")
	require.ErrorIs(t, err, input.ErrInvalidValue)
	require.Contains(t, err.Error(), "[2, 2]")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]input.Format{
		"json": input.FormatJSON, ".yml": input.FormatYAML, "YAML": input.FormatYAML,
		"toml": input.FormatTOML, "csv": input.FormatCSV, "": input.FormatAuto,
		"inline": input.FormatInline,
	} {
		got, err := input.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := input.ParseFormat("xml")
	require.ErrorIs(t, err, input.ErrFormat)

	require.Equal(t, input.FormatTOML, input.FormatFromPath("a/b.toml"))
	require.Equal(t, input.FormatAuto, input.FormatFromPath("matrix.dat"))
	require.Equal(t, "yaml", input.FormatYAML.String())
}

func TestValidate(t *testing.T) {
	w, err := input.Validate(scenario)
	require.NoError(t, err)
	require.Empty(t, w)

	_, err = input.Validate(nil)
	require.ErrorIs(t, err, input.ErrEmpty)

	_, err = input.Validate([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, input.ErrNotSquare)

	_, err = input.Validate([][]float64{{1}})
	require.ErrorIs(t, err, input.ErrSize)

	big := make([][]float64, 11)
	for i := range big {
		big[i] = make([]float64, 11)
	}
	_, err = input.Validate(big)
	require.ErrorIs(t, err, input.ErrSize)

	_, err = input.Validate([][]float64{{1, math.Inf(1)}, {3, 4}})
	require.ErrorIs(t, err, input.ErrInvalidValue)
	require.Contains(t, err.Error(), "[1, 2]")
}

func TestValidate_Warnings(t *testing.T) {
	w, err := input.Validate([][]float64{{1, 2e6}, {3, 4}})
	require.NoError(t, err)
	require.Len(t, w, 1)
	require.Equal(t, 1, w[0].Row)
	require.Equal(t, 2, w[0].Col)
	require.Contains(t, w[0].String(), "very large value")

	seven := make([][]float64, 7)
	for i := range seven {
		seven[i] = make([]float64, 7)
	}
	w, err = input.Validate(seven)
	require.NoError(t, err)
	require.Len(t, w, 1)
	require.Contains(t, w[0].Message, "may take longer")
}
