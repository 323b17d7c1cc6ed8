package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WordCount returns the number of whitespace-delimited tokens in buffer.
// Empty and whitespace-only buffers have zero words.
func WordCount(buffer string) int {
	trimmed := strings.TrimSpace(buffer)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// Stats summarises a buffer for the status line.
type Stats struct {
	Lines      int
	Words      int
	Characters int // user-perceived characters (grapheme clusters)
	Bytes      int
}

// Count computes Stats for buffer. An empty buffer has zero lines.
func Count(buffer string) Stats {
	st := Stats{
		Words: WordCount(buffer),
		Bytes: len(buffer),
	}
	if buffer == "" {
		return st
	}
	st.Lines = strings.Count(buffer, "\n") + 1
	st.Characters = uniseg.GraphemeClusterCount(buffer)
	return st
}
