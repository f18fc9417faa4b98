package config

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	memFs := afero.NewMemMapFs()
	contents := []byte("motd: welcome\nprompt: '\\w $ '\ncolor: never\n")
	require.NoError(t, afero.WriteFile(memFs, "/etc/jsh/config.yaml", contents, 0644))

	cases := []struct {
		name string
		path string
	}{
		{"directory", "/etc/jsh"},
		{"file path moves up a level", "/etc/jsh/config.yaml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(memFs, tc.path)
			require.NoError(t, err)
			assert.Equal(t, "welcome", cfg.Motd)
			assert.Equal(t, `\w $ `, cfg.Prompt)
			assert.Equal(t, ColorNever, cfg.Color)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nowhere")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	memFs := afero.NewMemMapFs()
	contents := []byte("prompt: '$ '\ncolor: auto\nhistory_size: 100\n")
	require.NoError(t, afero.WriteFile(memFs, "config.yaml", contents, 0644))

	_, err := Load(memFs, ".")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	memFs := afero.NewMemMapFs()
	contents := []byte("motd: ''\nprompt: '$ '\ncolor: rainbow\n")
	require.NoError(t, afero.WriteFile(memFs, "config.yaml", contents, 0644))

	_, err := Load(memFs, ".")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "color")
}
