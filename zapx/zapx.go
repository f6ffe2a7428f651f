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

// Package zapx reports fatal failures through a zap logger.
package zapx

import (
	"go.uber.org/zap"

	"dirpx.dev/problem"
)

// Reporter returns a problem.Reporter that logs the failure at error
// level. The entry message is the failure text; the action, the root
// cause and the backtrace are added as fields when present.
//
// The logger is synced before returning, since the process exits right
// after.
func Reporter(l *zap.Logger) problem.Reporter {
	if l == nil {
		l = zap.NewNop()
	}
	return func(f *problem.Failure) {
		fields := []zap.Field{zap.String("action", f.Action)}
		if f.Problem != nil {
			fields = append(fields, zap.String("cause", f.Problem.Root().Message()))
			if bt := f.Problem.Backtrace(); bt != "" {
				fields = append(fields, zap.String("backtrace", bt))
			}
		}
		l.Error(f.Error(), fields...)
		_ = l.Sync()
	}
}

// FormatFailureToErrorLog installs Reporter(l) as the process-wide
// reporter. A nil l means the global logger, zap.L().
func FormatFailureToErrorLog(l *zap.Logger) {
	if l == nil {
		l = zap.L()
	}
	problem.SetReporter(Reporter(l))
}
