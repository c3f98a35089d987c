//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFileSettings(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalogPath := tf.WriteFile("langs.yaml", "- label: Go\n  value: go\n- label: Rust\n  value: rust\n")
	configPath := tf.WriteFile("selectdrop.toml", `version = 1
catalog_file = "`+catalogPath+`"

[select]
label = "Language"
placeholder = "Choose one"
with_search = true
outline = false
`)

	require.NoError(t, tf.StartApp("--config", configPath))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Language"), "Should show the configured label")
	require.True(t, tf.SeePlain("Choose one"), "Should show the configured placeholder")
	require.True(t, tf.SeePlain("2 options"), "Should load the configured catalog")

	tf.Quit()
	require.NoError(t, tf.WaitExit(2*time.Second))
}

func TestSaveConfigOnExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	configPath := tf.Path("saved.toml")

	require.NoError(t, tf.StartApp("--config", configPath, "--save-config", "--label", "Stack"))
	require.True(t, tf.Ready())

	// Switch to multi select before leaving
	tf.SendKeys("m")
	require.True(t, tf.SeePlain("Multi select"))

	tf.Quit()
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be written on exit")
	assert.Regexp(t, `label = ['"]Stack['"]`, string(data))
	assert.Contains(t, string(data), "multiple = true")
}

func TestWatchReloadsCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalogPath := tf.WriteFile("langs.toml", "[[options]]\nlabel = \"Go\"\nvalue = \"go\"\n")

	require.NoError(t, tf.StartApp("--catalog", catalogPath, "--watch"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("1 options"))

	tf.WriteFile("langs.toml", "[[options]]\nlabel = \"Go\"\nvalue = \"go\"\n\n[[options]]\nlabel = \"Zig\"\nvalue = \"zig\"\n")
	require.True(t, tf.SeePlain("Catalog loaded: 2 options"), "Watcher should push the new catalog")

	tf.Enter()
	require.True(t, tf.SeePlain("Zig"))

	tf.SendCtrlC()
	require.NoError(t, tf.WaitExit(2*time.Second))
}
