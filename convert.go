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

import "fmt"

// UnknownMessage is the cause text used when there is no error value to
// render, e.g. an absent optional error.
const UnknownMessage = "<unknown error>"

// Unknown returns a Cause carrying UnknownMessage.
func Unknown() *Problem {
	return newCause(UnknownMessage)
}

// From converts any error-like value into a Problem.
//
// The value is rendered to text eagerly, using its own display rule:
//   - nil                -> Unknown();
//   - *Problem           -> returned as is;
//   - error              -> err.Error();
//   - fmt.Stringer       -> v.String();
//   - string             -> verbatim;
//   - anything else      -> fmt.Sprint(v).
//
// From never fails.
func From(v any) *Problem {
	switch x := v.(type) {
	case nil:
		return Unknown()
	case *Problem:
		if x == nil {
			return Unknown()
		}
		return x
	case error:
		return fromError(x)
	case fmt.Stringer:
		return newCause(x.String())
	case string:
		return newCause(x)
	default:
		return newCause(fmt.Sprint(v))
	}
}

// FromError converts err into a Problem. A nil err, or a nil *Problem held
// in a non-nil error, yields Unknown().
//
// If err already is a *Problem it is returned unchanged, so converting at
// every layer of a call stack never re-renders an existing chain.
func FromError(err error) *Problem {
	if err == nil {
		return Unknown()
	}
	return fromError(err)
}

func fromError(err error) *Problem {
	if p, ok := err.(*Problem); ok {
		if p == nil {
			return Unknown()
		}
		return p
	}
	return newCause(err.Error())
}

// FromOption converts an optional error-like value into a Problem.
// When ok is false the result is Unknown(); otherwise it is From(e).
func FromOption[E any](e E, ok bool) *Problem {
	if !ok {
		return Unknown()
	}
	return From(e)
}
