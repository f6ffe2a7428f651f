/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package utf8x decodes UTF-8 strictly and reports where and how the input
// stops being valid.
package utf8x

import (
	"fmt"
	"unicode/utf8"
)

// Error describes the first invalid UTF-8 sequence in a byte slice.
type Error struct {
	// ValidUpTo is the length of the longest valid prefix.
	ValidUpTo int

	// ErrorLen is the length of the invalid sequence starting at
	// ValidUpTo, 1 to 3 bytes. Zero means the input ended in the middle
	// of an otherwise valid sequence.
	ErrorLen int
}

func (e *Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// Incomplete reports whether the input was cut short rather than malformed.
func (e *Error) Incomplete() bool { return e.ErrorLen == 0 }

// Decode returns b as a string if it is valid UTF-8, and an *Error
// locating the first bad sequence otherwise.
func Decode(b []byte) (string, error) {
	if err := Validate(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// Validate reports the first invalid sequence in b, or nil.
func Validate(b []byte) error {
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		n := sequenceLen(b[i:])
		if n > 0 {
			i += n
			continue
		}
		return &Error{ValidUpTo: i, ErrorLen: -n}
	}
	return nil
}

// sequenceLen returns the width of the valid multi-byte sequence at the
// start of b, or the negated length of the maximal invalid prefix. A return
// of 0 means b ends inside a sequence that could still become valid.
func sequenceLen(b []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	width := 0
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		width = 2
	case c == 0xE0:
		width, lo = 3, 0xA0
	case c == 0xED:
		width, hi = 3, 0x9F
	case c >= 0xE1 && c <= 0xEF:
		width = 3
	case c == 0xF0:
		width, lo = 4, 0x90
	case c == 0xF4:
		width, hi = 4, 0x8F
	case c >= 0xF1 && c <= 0xF3:
		width = 4
	default:
		return -1
	}

	for k := 1; k < width; k++ {
		if k >= len(b) {
			return 0
		}
		c := b[k]
		if k == 1 {
			if c < lo || c > hi {
				return -1
			}
			continue
		}
		if c < 0x80 || c > 0xBF {
			return -k
		}
	}
	return width
}
