package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	v := viper.New()
	fs := afero.NewMemMapFs()
	cmd := NewRootCmd(v, fs)

	assert.Equal(t, "pairchain", cmd.Use)
	assert.NotNil(t, cmd.Commands())
	assert.Equal(t, 4, len(cmd.Commands()))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("pair"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("file"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("filter"))
}
