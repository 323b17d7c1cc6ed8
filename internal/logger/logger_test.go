package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warning", "WARN"},
		{"err", "ERROR"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in).String(), tt.in)
	}
}

func TestInitRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	assert.NotContains(t, out.String(), "hidden 1")
	assert.Contains(t, out.String(), "shown 2")
	assert.Contains(t, out.String(), "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	DebugTagf("noisy", "dropped")
	DebugTagf("history", "kept")
	Debugf("untagged")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"export"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	InfoTagf("export", "wanted")
	Infof("untagged")

	assert.Contains(t, out.String(), "wanted")
	assert.NotContains(t, out.String(), "untagged")
}

func TestPackageFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("from the logger package")
	assert.Empty(t, out.String())
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("-")
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "wordpad.log")
	w, closeFn, err = OpenOutput(path)
	require.NoError(t, err)
	Init(Config{LogLevel: "info"}, w)
	Infof("to file")
	Init(NewConfig(), nil)
	require.NoError(t, closeFn())
	assert.FileExists(t, path)
}
