package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/haijima/pairchain/internal/pair"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetInputFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArray("pair", []string{}, "A known `pair` as \"first - second\"; can be repeated")
	cmd.PersistentFlags().StringP("file", "f", "", "The `file` to read known pairs from, one \"first - second\" per line")
	cmd.PersistentFlags().String("filter", "", "The CEL `expression` over first and second that pairs must satisfy")
	_ = cmd.MarkPersistentFlagFilename("file")
}

// PairsFromViper returns the pairs from the file followed by the ones given with --pair.
// Without either, the built-in list is used.
func PairsFromViper(v *viper.Viper, fs afero.Fs) ([]pair.Pair, error) {
	file := v.GetString("file")
	args := v.GetStringSlice("pair")

	pairs := make([]pair.Pair, 0, len(args))
	if file != "" {
		f, err := fs.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", file)
		}
		defer f.Close()
		fromFile, err := pair.Read(f)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", file)
		}
		pairs = append(pairs, fromFile...)
	}
	for _, a := range args {
		p, err := pair.Parse(a)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	if file == "" && len(args) == 0 {
		slog.Debug("No pairs given, using the built-in list")
		return pair.Default(), nil
	}
	return pairs, nil
}

func FilterFromViper(v *viper.Viper) (*pair.Filter, error) {
	expr := v.GetString("filter")
	if expr == "" {
		return nil, nil
	}
	return pair.NewFilter(expr)
}

func BuildFromViper(v *viper.Viper, fs afero.Fs) (*pair.Result, error) {
	base, err := PairsFromViper(v, fs)
	if err != nil {
		return nil, err
	}
	var opts []pair.Option
	f, err := FilterFromViper(v)
	if err != nil {
		return nil, err
	}
	if f != nil {
		opts = append(opts, pair.WithFilter(f))
	}
	res, err := pair.Build(base, opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("Built chain", "known", len(res.Base), "generated", len(res.Generated), "chained", len(res.Chain))
	return res, nil
}
