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

// Command problemcat prints files that must be valid UTF-8, and stops with
// a readable "Failed to ..." message at the first one that is not.
//
//	problemcat [--log] [--backtrace] FILE...
package main

import (
	"errors"
	"io"
	"iter"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"dirpx.dev/problem"
	"dirpx.dev/problem/internal/utf8x"
	"dirpx.dev/problem/zapx"
)

type options struct {
	Log       bool `long:"log" description:"Report failures through the structured error log instead of stderr"`
	Backtrace bool `long:"backtrace" description:"Capture a backtrace for every cause (same as PROBLEM_BACKTRACE=1)"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.Log {
		logger := problem.Try(zap.NewProduction()).OrFailedTo("create logger")
		zapx.FormatFailureToErrorLog(logger)
	} else {
		problem.FormatFailureToStderr()
	}
	if opts.Backtrace {
		problem.SetBacktrace(true)
	}

	run(os.Stdout, opts.Args.Files)
}

// run copies every file to w and terminates through the installed reporter
// at the first one that cannot be read.
func run(w io.Writer, files []string) {
	for text := range problem.OrFailedToSeq(readAll(files), "read input files") {
		problem.OrFailedTo(writeText(w, text), "write output")
	}
}

// readAll yields the text of each path in order.
func readAll(paths []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(readText(p)) {
				return
			}
		}
	}
}

func readText(path string) (string, error) {
	return problem.InContextOf("reading "+path, func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return problem.Try(utf8x.Decode(b)).While("creating string").Get()
	})
}

func writeText(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return problem.While(err, "copying to output")
}
