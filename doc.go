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

// Package problem turns heterogeneous errors into a single, human-readable
// error value for command-line programs.
//
// A Problem is not meant to be matched on or recovered from. It is meant
// to be reported: it keeps only the text of the original error plus the
// list of things the program was doing when it happened.
//
// # Converting
//
// Any error-like value becomes a Problem through From, FromError or
// FromOption. The value is rendered to text at once and then dropped.
//
// # Adding context
//
//	err := problem.While(err, "parsing input")
//	err = problem.While(err, "processing input data")
//	fmt.Println(err)
//	// while processing input data, while parsing input got problem caused by: boom!
//
// WhileWith, InContext and InContextOf cover lazy messages and whole blocks.
//
// # Failing
//
// At the top of a command, Result.OrFailedTo, Option.OrFailedTo, OrFailedTo
// and OrFailedToSeq stop the program with a "Failed to ..." message:
//
//	func main() {
//	    problem.FormatFailureToStderr()
//	    cfg := problem.Try(loadConfig()).OrFailedTo("load configuration")
//	    ...
//	}
//
// Without an installed Reporter the Failure is raised with panic and the Go
// runtime prints its usual crash report. Installing one (SetReporter,
// FormatFailureToStderr, or zapx.FormatFailureToErrorLog) switches to the
// friendly message followed by exit status 1.
//
// # Backtraces
//
// Setting PROBLEM_BACKTRACE=1 makes every new Cause capture the call stack.
// It is shown by %+v and appended to failure reports.
package problem
