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
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// BacktraceEnv names the environment variable that turns on backtrace
// capture for every new Cause. Accepted values are "full" and anything
// strconv.ParseBool reads as true. Anything else, or no variable at all,
// leaves capture off.
const BacktraceEnv = "PROBLEM_BACKTRACE"

// maxBacktraceDepth bounds the number of frames captured.
const maxBacktraceDepth = 64

var (
	backtraceOnce sync.Once
	backtraceOn   atomic.Bool
)

// SetBacktrace overrides the BacktraceEnv toggle for the rest of the
// process.
func SetBacktrace(on bool) {
	backtraceOnce.Do(func() {})
	backtraceOn.Store(on)
}

func backtraceEnabled() bool {
	backtraceOnce.Do(func() {
		backtraceOn.Store(parseBacktraceEnv(os.Getenv(BacktraceEnv)))
	})
	return backtraceOn.Load()
}

func parseBacktraceEnv(v string) bool {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "full") {
		return true
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}

// packageDir is the source directory of this package, as the runtime
// reports it (absolute, or module-relative under -trimpath).
var packageDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

// inPackage reports whether fr is a non-test frame of this package.
func inPackage(fr runtime.Frame) bool {
	return filepath.Dir(fr.File) == packageDir && !strings.HasSuffix(fr.File, "_test.go")
}

// captureBacktrace renders the calling goroutine's stack as plain text,
// one frame per two lines, in the style of runtime/debug.Stack:
//
//	pkg.Func
//		/path/to/file.go:42
//
// Leading frames of this package are dropped, so the trace starts at the
// code that called into it whatever the entry point was.
func captureBacktrace() string {
	pc := make([]uintptr, maxBacktraceDepth)
	// 0 = runtime.Callers, 1 = captureBacktrace.
	n := runtime.Callers(2, pc)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	leading := true
	for {
		fr, more := frames.Next()
		if leading && inPackage(fr) && more {
			continue
		}
		if !leading {
			b.WriteByte('\n')
		}
		leading = false
		_, _ = fmt.Fprintf(&b, "%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
		if !more {
			break
		}
	}
	return b.String()
}
