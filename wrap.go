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

// While converts err into a Problem and adds msg as the operation being
// attempted. A nil err is returned as nil.
//
// Usage:
//
//	if err := os.Remove(path); err != nil {
//	    return problem.While(err, "removing stale lock")
//	}
func While(err error, msg string) error {
	if err == nil {
		return nil
	}
	return FromError(err).While(msg)
}

// WhileWith is the lazy variant of While: msg is only called when err is
// non-nil, so building the message costs nothing on the success path.
func WhileWith(err error, msg func() string) error {
	if err == nil {
		return nil
	}
	return FromError(err).While(msg())
}

// InContext runs body and, if it fails, wraps its error with msg.
//
// It adds one context layer around a whole block of fallible calls:
//
//	err := problem.InContext("loading config", func() error {
//	    b, err := os.ReadFile(path)
//	    if err != nil {
//	        return err
//	    }
//	    return json.Unmarshal(b, &cfg)
//	})
func InContext(msg string, body func() error) error {
	return While(body(), msg)
}

// InContextWith is the lazy variant of InContext.
func InContextWith(msg func() string, body func() error) error {
	return WhileWith(body(), msg)
}

// InContextOf runs body and, if it fails, wraps its error with msg.
// On success the value produced by body is returned unchanged.
func InContextOf[T any](msg string, body func() (T, error)) (T, error) {
	v, err := body()
	if err != nil {
		var zero T
		return zero, While(err, msg)
	}
	return v, nil
}

// InContextOfWith is the lazy variant of InContextOf.
func InContextOfWith[T any](msg func() string, body func() (T, error)) (T, error) {
	v, err := body()
	if err != nil {
		var zero T
		return zero, WhileWith(err, msg)
	}
	return v, nil
}
