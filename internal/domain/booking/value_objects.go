package booking

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxNoteLength = 500

var ErrNoteTooLong = errors.New("note exceeds 500 characters")

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
