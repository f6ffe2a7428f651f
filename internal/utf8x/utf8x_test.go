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

package utf8x

import (
	"errors"
	"testing"
)

func TestDecode_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"ascii", []byte("hello")},
		{"two byte", []byte("żółć")},
		{"three byte", []byte("€100")},
		{"four byte", []byte("\U0001F600")},
		{"edge of range", []byte("\uD7FF\U0010FFFF")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.in, err)
			}
			if got != string(tt.in) {
				t.Fatalf("Decode(%q) = %q", tt.in, got)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"stray byte", []byte{'h', 'i', 0xFF}, "invalid utf-8 sequence of 1 bytes from index 2"},
		{"lone continuation", []byte{0x80}, "invalid utf-8 sequence of 1 bytes from index 0"},
		{"overlong lead", []byte{'a', 0xC0, 0x80}, "invalid utf-8 sequence of 1 bytes from index 1"},
		{"bad second byte", []byte{0xE2, 0x41}, "invalid utf-8 sequence of 1 bytes from index 0"},
		{"bad third byte", []byte{0xE2, 0x82, 0x41}, "invalid utf-8 sequence of 2 bytes from index 0"},
		{"bad fourth byte", []byte{'x', 0xF0, 0x9F, 0x98, 0x41}, "invalid utf-8 sequence of 3 bytes from index 1"},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, "invalid utf-8 sequence of 1 bytes from index 0"},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, "invalid utf-8 sequence of 1 bytes from index 0"},
		{"truncated", []byte{'o', 'k', 0xE2, 0x82}, "incomplete utf-8 byte sequence from index 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if err == nil {
				t.Fatalf("Decode(%q) want error", tt.in)
			}
			if err.Error() != tt.want {
				t.Fatalf("Decode(%q) error = %q, want %q", tt.in, err.Error(), tt.want)
			}
			var ue *Error
			if !errors.As(err, &ue) {
				t.Fatalf("error is %T, want *Error", err)
			}
		})
	}
}

func TestError_Incomplete(t *testing.T) {
	err := Validate([]byte{0xF0, 0x9F})
	var ue *Error
	if !errors.As(err, &ue) {
		t.Fatalf("want *Error, got %v", err)
	}
	if !ue.Incomplete() || ue.ValidUpTo != 0 {
		t.Fatalf("got %+v, want incomplete at 0", ue)
	}
}
