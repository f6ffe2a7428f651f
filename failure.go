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
	"os"
	"sync/atomic"
)

// ExitCode is the process exit status used after a Reporter has reported
// a Failure.
const ExitCode = 1

// Failure describes a fatal, non-recoverable failure of a top-level
// action. It is what OrFailedTo hands to the installed Reporter, and what
// it panics with when no Reporter is installed.
type Failure struct {
	// Action is the "failed to" part, e.g. "load configuration".
	Action string

	// Problem is the underlying problem. It is nil when the failure came
	// from an absent optional value.
	Problem *Problem
}

// Error implements the built-in error interface.
//
// The format is:
//
//	Failed to <action> due to: <problem>
//
// or, when there is no underlying problem:
//
//	Failed to <action>
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Problem == nil {
		return "Failed to " + f.Action
	}
	return fmt.Sprintf("Failed to %s due to: %s", f.Action, f.Problem)
}

// Unwrap returns the underlying problem, if any.
func (f *Failure) Unwrap() error {
	if f == nil || f.Problem == nil {
		return nil
	}
	return f.Problem
}

// Report returns the text a Reporter should present to the user: Error()
// followed by the backtrace of the root cause when one was captured.
func (f *Failure) Report() string {
	if f == nil || f.Problem == nil {
		return f.Error()
	}
	if bt := f.Problem.Backtrace(); bt != "" {
		return f.Error() + backtraceHeader + bt
	}
	return f.Error()
}

// Reporter presents a Failure to the user right before the process exits.
type Reporter func(f *Failure)

var (
	// reporter is the process-wide Reporter. A nil value means "panic with
	// the Failure" so the Go runtime prints its default crash report.
	reporter atomic.Pointer[Reporter]

	// exit terminates the process after reporting. Replaced in tests.
	exit = os.Exit
)

// SetReporter installs r as the process-wide Reporter, replacing any
// previous one. Passing nil restores the default crash report.
//
// It is meant to be called once near the start of main. Concurrent calls
// do not race, but the last one wins.
func SetReporter(r Reporter) {
	if r == nil {
		reporter.Store(nil)
		return
	}
	reporter.Store(&r)
}

// ReportTo returns a Reporter that writes the failure report and a newline
// to w.
func ReportTo(w io.Writer) Reporter {
	return func(f *Failure) {
		_, _ = fmt.Fprintln(w, f.Report())
	}
}

// FormatFailureToStderr installs a Reporter that writes failures to the
// standard error stream.
func FormatFailureToStderr() {
	SetReporter(ReportTo(os.Stderr))
}

// fail terminates the process. It never returns.
func fail(f *Failure) {
	if r := reporter.Load(); r != nil {
		(*r)(f)
		exit(ExitCode)
		return
	}
	panic(f)
}

// OrFailedTo terminates the process with "Failed to <msg> due to: <err>"
// when err is non-nil, and does nothing otherwise.
//
//	problem.OrFailedTo(srv.ListenAndServe(), "serve HTTP")
func OrFailedTo(err error, msg string) {
	if err != nil {
		fail(&Failure{Action: msg, Problem: FromError(err)})
	}
}

// OrFailedToSeq turns a sequence of (value, error) pairs into a sequence of
// values. The source is consumed lazily; the first error terminates the
// process with "Failed to <msg> due to: <err>" and nothing after it is
// pulled from seq.
//
// The returned sequence is one-shot: ranging over it a second time yields
// nothing.
func OrFailedToSeq[T any](seq iter.Seq2[T, error], msg string) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			return
		}
		for v, err := range seq {
			if err != nil {
				fail(&Failure{Action: msg, Problem: FromError(err)})
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// OrFailedToAll is OrFailedToSeq over a slice of Results.
func OrFailedToAll[T any](results []Result[T], msg string) iter.Seq[T] {
	return OrFailedToSeq(func(yield func(T, error) bool) {
		for _, r := range results {
			if !yield(r.Get()) {
				return
			}
		}
	}, msg)
}
