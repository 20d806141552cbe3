package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	return cmd, buf
}

func Test_runList_default(t *testing.T) {
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "text")

	err := runList(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "list_default", buf.Bytes())
}

func Test_runList_file(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "pairs.txt", []byte("# letters\nA - B\nC,D\n"), 0o644))
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "text")
	v.Set("file", "pairs.txt")

	err := runList(cmd, v, fs)

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "list_file", buf.Bytes())
}

func Test_runList_pairFlags(t *testing.T) {
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "text")
	v.Set("pair", []string{"A - B", "B - C"})

	err := runList(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	assert.Equal(t, "Complete list:\n------------------------------------\nB - C\nC - A\nA - B\n", buf.String())
}

func Test_runList_filter(t *testing.T) {
	cmd, buf := newTestCmd()
	v := viper.New()
	v.Set("format", "text")
	v.Set("pair", []string{"A - B", "C - D"})
	v.Set("filter", `first != "D" && second != "D"`)

	err := runList(cmd, v, afero.NewMemMapFs())

	require.NoError(t, err)
	assert.Equal(t, "Complete list:\n------------------------------------\nB - A\nA - C\nC - B\n", buf.String())
}

func Test_runList_errors(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr string
	}{
		{"unknown format", map[string]any{"format": "yaml"}, "unknown format: yaml"},
		{"missing file", map[string]any{"format": "text", "file": "nope.txt"}, "open nope.txt"},
		{"invalid pair", map[string]any{"format": "text", "pair": []string{"A"}}, `invalid pair "A"`},
		{"invalid filter", map[string]any{"format": "text", "filter": "first"}, "must evaluate to bool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd()
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}

			err := runList(cmd, v, afero.NewMemMapFs())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}
