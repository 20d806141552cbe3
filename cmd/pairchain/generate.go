package main

import (
	"strings"

	pio "github.com/haijima/pairchain/internal/io"
	"github.com/haijima/pairchain/internal/pair"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGenerateCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "generate"
	cmd.Aliases = []string{"gen"}
	cmd.Short = "Print only the pairs generated from the known pairs"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGenerate(cmd, v, fs) }

	cmd.Flags().String("format", "text", "The output format {"+strings.Join(pio.Formats, "|")+"}")

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := pio.ValidateFormat(format); err != nil {
		return err
	}

	base, err := PairsFromViper(v, fs)
	if err != nil {
		return err
	}
	generated := pair.Generate(base)
	f, err := FilterFromViper(v)
	if err != nil {
		return err
	}
	if f != nil {
		if generated, err = f.Apply(generated); err != nil {
			return err
		}
	}
	return pio.PrintPairs(cmd.OutOrStdout(), "Generated pairs:", generated, format)
}
