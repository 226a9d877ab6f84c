package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/httpd/config"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parse(nil, io.Discard)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("flags", func(t *testing.T) {
		cfg, err := parse([]string{
			"-host", "0.0.0.0", "-port", "9090", "-workers", "2",
			"-root", "/srv/www", "-log", "/var/log/httpd.log", "-level", "debug",
		}, io.Discard)
		require.NoError(t, err)
		require.Equal(t, "0.0.0.0", cfg.Server.Host)
		require.Equal(t, uint16(9090), cfg.Server.Port)
		require.Equal(t, 2, cfg.Server.Workers)
		require.Equal(t, "/srv/www", cfg.Server.Root)
		require.Equal(t, "/var/log/httpd.log", cfg.Log.File)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("flags override the file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "httpd.json")
		data := `{"server": {"port": 7070, "root": "/from/file"}, "log": {"level": "error"}}`
		require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

		cfg, err := parse([]string{"-config", file, "-root", "/from/flag"}, io.Discard)
		require.NoError(t, err)
		require.Equal(t, uint16(7070), cfg.Server.Port)
		require.Equal(t, "/from/flag", cfg.Server.Root)
		require.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, args := range [][]string{
			{"-port", "70000"},
			{"-workers", "0"},
			{"-level", "verbose"},
			{"-root", ""},
			{"-unknown"},
			{"-config", "/definitely/not/existing.json"},
		} {
			_, err := parse(args, io.Discard)
			require.Error(t, err, args)
		}
	})
}
