package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalRegister(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.UsesSystem())

	_, ok := m.Paste()
	assert.False(t, ok)

	assert.NoError(t, m.Copy("hello"))
	got, ok := m.Paste()
	assert.True(t, ok)
	assert.Equal(t, "hello", got)
}

func fakeSystem(m *Manager) *string {
	var sys string
	m.useSystem = true
	m.readSystem = func() (string, error) { return sys, nil }
	m.writeSystem = func(s string) error { sys = s; return nil }
	return &sys
}

func TestSystemClipboard(t *testing.T) {
	m := NewManager(false)
	sys := fakeSystem(m)

	assert.NoError(t, m.Copy("shared"))
	assert.Equal(t, "shared", *sys)

	*sys = "from another app"
	got, ok := m.Paste()
	assert.True(t, ok)
	assert.Equal(t, "from another app", got)
}

func TestSystemClipboardFailureFallsBack(t *testing.T) {
	m := NewManager(false)
	m.useSystem = true
	m.readSystem = func() (string, error) { return "", errors.New("no display") }
	m.writeSystem = func(string) error { return errors.New("no display") }

	assert.Error(t, m.Copy("local"))
	got, ok := m.Paste()
	assert.True(t, ok)
	assert.Equal(t, "local", got)
}
