package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/haijima/pairchain/internal/pair"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runGraph_text(t *testing.T) {
	color.NoColor = true
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "text")

	err := runGraph(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	got := buf.String()
	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "known pairs     : 3")
	assert.Contains(t, got, "generated pairs : 12")
	assert.Contains(t, got, "chained pairs   : 15")
	assert.Contains(t, got, "segments        : 3")
	assert.Contains(t, got, "\tSharat -> Hemant -> Shishira\n")
	assert.Contains(t, got, "\tVarsha -> Hemant -> Greeshma -> Varsha -> Shishira -> Greeshma -> Sharat -> Vasant -> Greeshma\n")
	assert.Contains(t, got, "\tHemant -> Vasant -> Varsha -> Sharat -> Shishira -> Vasant\n")
	assert.Contains(t, got, "clusters        : 1")
	assert.Contains(t, got, `["Sharat" "Hemant" "Shishira" "Varsha" "Greeshma" "Vasant"]`)
}

func Test_runGraph_dot(t *testing.T) {
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "dot")
	v.Set("pair", []string{"A - B", "C - D"})
	v.Set("filter", `first != "D" && second != "D"`)

	err := runGraph(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	got := buf.String()
	assert.Contains(t, got, "digraph pairchain {")
	assert.Contains(t, got, `subgraph "cluster_1" {`)
	assert.NotContains(t, got, `subgraph "cluster_2" {`)
	assert.Contains(t, got, `"B" -> "A" [ label="1" ]`)
	assert.Contains(t, got, `"A" -> "C" [ label="2" ]`)
	assert.Contains(t, got, `"C" -> "B" [ label="3" ]`)
}

func Test_runGraph_dotDisconnected(t *testing.T) {
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "dot")
	v.Set("pair", []string{"A - B", "C - D"})
	v.Set("filter", `(first == "A" && second == "B") || (first == "C" && second == "D")`)

	err := runGraph(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	got := buf.String()
	assert.Contains(t, got, `subgraph "cluster_2" {`)
	assert.Contains(t, got, `"C" -> "D" [ label="1" ]`)
	assert.Contains(t, got, `"B" -> "A" [ label="2" style="dashed" ]`)
}

func Test_runGraph_unknownFormat(t *testing.T) {
	cmd, _ := newTestCmd()
	v := viper.New()
	v.Set("format", "table")

	err := runGraph(cmd, v, afero.NewMemMapFs())

	assert.EqualError(t, err, "unknown format: table")
}

func Test_segmentString(t *testing.T) {
	assert.Equal(t, "", segmentString(nil))
	assert.Equal(t, "A -> B", segmentString([]pair.Pair{pair.New("A", "B")}))
	assert.Equal(t, "A -> B -> C", segmentString([]pair.Pair{pair.New("A", "B"), pair.New("B", "C")}))
}
