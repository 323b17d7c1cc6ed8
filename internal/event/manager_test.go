package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeBufferModified, func(e Event) bool {
		got = append(got, "first:"+e.Data.(BufferModifiedData).Source)
		return false
	})
	m.Subscribe(TypeBufferModified, func(e Event) bool {
		got = append(got, "second")
		return false
	})
	m.Subscribe(TypeAppQuit, func(e Event) bool {
		got = append(got, "quit")
		return false
	})

	m.Dispatch(TypeBufferModified, BufferModifiedData{Source: "input"})
	assert.Equal(t, []string{"first:input", "second"}, got)
}

func TestDispatchConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeHistoryChanged, func(Event) bool { calls++; return true })
	m.Subscribe(TypeHistoryChanged, func(Event) bool { calls++; return false })

	m.Dispatch(TypeHistoryChanged, HistoryChangedData{Direction: "undo"})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	assert.NotPanics(t, func() { NewManager().Dispatch(TypeAppReady, nil) })
}

func TestHandlerMaySubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		calls++
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 1, calls)
	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 3, calls)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ExportFinished", TypeExportFinished.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
