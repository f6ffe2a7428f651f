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

// Result couples the two return values of a fallible call so that context
// and termination helpers can be chained on them:
//
//	cfg := problem.Try(os.ReadFile(path)).
//	    While("reading config").
//	    OrFailedTo("start server")
//
// The zero Result is a success holding the zero value.
type Result[T any] struct {
	value T
	prob  *Problem
}

// Try captures the results of a (T, error) call. A non-nil err is converted
// with FromError immediately.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{prob: FromError(err)}
	}
	return Result[T]{value: v}
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail returns a failed Result carrying From(err).
func Fail[T any](err any) Result[T] { return Result[T]{prob: From(err)} }

// While adds a context layer on the failure path; a success is returned
// unchanged.
func (r Result[T]) While(msg string) Result[T] {
	if r.prob == nil {
		return r
	}
	return Result[T]{prob: r.prob.While(msg)}
}

// WhileWith is the lazy variant of While.
func (r Result[T]) WhileWith(msg func() string) Result[T] {
	if r.prob == nil {
		return r
	}
	return Result[T]{prob: r.prob.While(msg())}
}

// Get returns the value and the error in the usual Go shape. The error is
// either nil or a *Problem.
func (r Result[T]) Get() (T, error) {
	if r.prob != nil {
		var zero T
		return zero, r.prob
	}
	return r.value, nil
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	if r.prob != nil {
		var zero T
		return zero
	}
	return r.value
}

// Err returns the failure as an error, or nil.
func (r Result[T]) Err() error {
	if r.prob == nil {
		return nil
	}
	return r.prob
}

// Problem returns the failure, or nil.
func (r Result[T]) Problem() *Problem { return r.prob }

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.prob == nil }

// OrFailedTo returns the value, or terminates the process with
// "Failed to <msg> due to: <problem>".
func (r Result[T]) OrFailedTo(msg string) T {
	if r.prob != nil {
		fail(&Failure{Action: msg, Problem: r.prob})
	}
	return r.value
}

// Option is an optional value in the (v, ok) shape of map lookups and type
// assertions.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// TryOk captures the results of a (T, bool) expression.
//
//	port := problem.TryOk(os.LookupEnv("PORT")).OrFailedTo("read PORT")
func TryOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Option[T]{value: v, ok: true}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// OkOrProblem turns an absent value into a failed Result whose cause is msg.
func (o Option[T]) OkOrProblem(msg string) Result[T] {
	if !o.ok {
		return Result[T]{prob: Cause(msg)}
	}
	return Result[T]{value: o.value}
}

// OrFailedTo returns the value, or terminates the process with
// "Failed to <msg>". There is no cause to report for an absent value.
func (o Option[T]) OrFailedTo(msg string) T {
	if !o.ok {
		fail(&Failure{Action: msg})
	}
	return o.value
}
