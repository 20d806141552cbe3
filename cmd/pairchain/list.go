package main

import (
	"strings"

	pio "github.com/haijima/pairchain/internal/io"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewListCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Aliases = []string{"chain"}
	cmd.Short = "Print known and generated pairs chained end to end"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runList(cmd, v, fs) }

	cmd.Flags().String("format", "text", "The output format {"+strings.Join(pio.Formats, "|")+"}")

	return cmd
}

func runList(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := pio.ValidateFormat(format); err != nil {
		return err
	}

	res, err := BuildFromViper(v, fs)
	if err != nil {
		return err
	}
	return pio.PrintPairs(cmd.OutOrStdout(), "Complete list:", res.Chain, format)
}
