// Package text holds the whole-buffer transformations and derived counts.
//
// Every function here is pure: it returns a new buffer and leaves recording
// the result in history to the caller.
package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform maps a buffer to a new buffer.
type Transform func(buffer string) string

// Erase returns the empty buffer.
func Erase(string) string {
	return ""
}

// ToUpper maps every character to upper case without locale tailoring.
// Special casings such as "ß" -> "SS" are applied.
func ToUpper(buffer string) string {
	return cases.Upper(language.Und).String(buffer)
}

// ToLower maps every character to lower case without locale tailoring.
func ToLower(buffer string) string {
	return cases.Lower(language.Und).String(buffer)
}
