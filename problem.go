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

package problem

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Problem is the unified, text-only error value.
//
// A Problem is either:
//   - a Cause: the rendered message of the original error (Inner is nil);
//   - a Context: a description of what was being attempted, wrapping the
//     next inner Problem.
//
// Nothing of the original error is retained except its text. Problems are
// never mutated after construction, so they can be shared freely.
type Problem struct {
	// message is the cause text for a leaf, or the context text for a layer.
	message string

	// inner is the wrapped problem. It is nil for a Cause.
	inner *Problem

	// backtrace is an optional plain-text call stack captured when the
	// cause was constructed. It never takes part in Error().
	backtrace string
}

const (
	// whileSep joins two nested context layers.
	whileSep = ", "

	// causedBy joins the innermost context layer with its cause.
	causedBy = " got problem caused by: "

	// backtraceHeader precedes the backtrace in verbose output.
	backtraceHeader = "\n--- Cause\n"
)

// Cause returns a leaf Problem carrying msg verbatim.
func Cause(msg string) *Problem {
	return newCause(msg)
}

// Causef returns a leaf Problem with a formatted message.
func Causef(format string, args ...any) *Problem {
	return newCause(fmt.Sprintf(format, args...))
}

// newCause is the single place leaf problems are built, so that the
// backtrace is captured consistently regardless of the entry point.
func newCause(msg string) *Problem {
	p := &Problem{message: msg}
	if backtraceEnabled() {
		p.backtrace = captureBacktrace()
	}
	return p
}

// While returns a new Problem that describes msg as the operation being
// attempted when p occurred. The receiver is not modified.
func (p *Problem) While(msg string) *Problem {
	if p == nil {
		p = Unknown()
	}
	return &Problem{message: msg, inner: p}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<cause>
//
// or, for one context layer:
//
//	while <context> got problem caused by: <cause>
//
// and each further layer is prepended as "while <context>, ".
func (p *Problem) Error() string {
	if p == nil {
		return "<nil>"
	}
	var b strings.Builder
	p.render(&b)
	return b.String()
}

// String returns the same text as Error.
func (p *Problem) String() string { return p.Error() }

func (p *Problem) render(b *strings.Builder) {
	for cur := p; cur != nil; cur = cur.inner {
		if cur.inner == nil {
			b.WriteString(cur.message)
			return
		}
		b.WriteString("while ")
		b.WriteString(cur.message)
		if cur.inner.inner == nil {
			b.WriteString(causedBy)
		} else {
			b.WriteString(whileSep)
		}
	}
}

// Format implements fmt.Formatter.
//
//	%s, %v  canonical text (Error()).
//	%q      quoted canonical text.
//	%+v     canonical text followed by the captured backtrace, if any.
func (p *Problem) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, p.Error())
		if s.Flag('+') {
			if bt := p.Backtrace(); bt != "" {
				_, _ = io.WriteString(s, backtraceHeader)
				_, _ = io.WriteString(s, bt)
			}
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	default:
		_, _ = io.WriteString(s, p.Error())
	}
}

// Message returns the text of this layer only: the context description
// for a Context, or the cause text for a Cause.
func (p *Problem) Message() string {
	if p == nil {
		return ""
	}
	return p.message
}

// Inner returns the wrapped problem, or nil for a Cause.
func (p *Problem) Inner() *Problem {
	if p == nil {
		return nil
	}
	return p.inner
}

// IsCause reports whether p is a leaf.
func (p *Problem) IsCause() bool { return p != nil && p.inner == nil }

// Depth returns the number of context layers above the cause.
func (p *Problem) Depth() int {
	n := 0
	for cur := p; cur != nil && cur.inner != nil; cur = cur.inner {
		n++
	}
	return n
}

// Root returns the innermost Cause.
func (p *Problem) Root() *Problem {
	cur := p
	for cur != nil && cur.inner != nil {
		cur = cur.inner
	}
	return cur
}

// Backtrace returns the backtrace captured with the root cause, or "".
func (p *Problem) Backtrace() string {
	if r := p.Root(); r != nil {
		return r.backtrace
	}
	return ""
}

// Messages yields the message of every layer from the outermost context
// down to the cause.
func (p *Problem) Messages() iter.Seq[string] {
	return func(yield func(string) bool) {
		for cur := p; cur != nil; cur = cur.inner {
			if !yield(cur.message) {
				return
			}
		}
	}
}

// Unwrap returns the inner problem so errors.Is / errors.As can walk the
// chain of layers. A Cause unwraps to nil: the original error is gone.
func (p *Problem) Unwrap() error {
	if p == nil || p.inner == nil {
		return nil
	}
	return p.inner
}
