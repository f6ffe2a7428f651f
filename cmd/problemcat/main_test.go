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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem"
)

func writeFile(t *testing.T, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, b, 0o600))
	return p
}

func TestReadText(t *testing.T) {
	problem.SetBacktrace(false)

	good := writeFile(t, "good.txt", []byte("héllo\n"))
	got, err := readText(good)
	require.NoError(t, err)
	assert.Equal(t, "héllo\n", got)

	bad := writeFile(t, "bad.txt", []byte{'h', 'i', 0xFF})
	_, err = readText(bad)
	require.Error(t, err)
	assert.Equal(t,
		"while reading "+bad+", while creating string got problem caused by: invalid utf-8 sequence of 1 bytes from index 2",
		err.Error())
}

func TestReadAll_StopsWhenConsumerStops(t *testing.T) {
	a := writeFile(t, "a.txt", []byte("a"))
	var seen []string
	for text, err := range readAll([]string{a, "/missing/b.txt"}) {
		require.NoError(t, err)
		seen = append(seen, text)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, "abc"))
	assert.Equal(t, "abc", buf.String())
}

type stopped struct{}

func TestRun_FailsOnInvalidFile(t *testing.T) {
	problem.SetBacktrace(false)
	t.Cleanup(func() { problem.SetReporter(nil) })

	good := writeFile(t, "a.txt", []byte("a"))
	bad := writeFile(t, "bad.txt", []byte{'h', 'i', 0xFF})
	next := writeFile(t, "c.txt", []byte("c"))

	var report bytes.Buffer
	problem.SetReporter(func(f *problem.Failure) {
		problem.ReportTo(&report)(f)
		// The real reporter is followed by os.Exit; stop here instead.
		panic(stopped{})
	})

	var out bytes.Buffer
	func() {
		defer func() {
			assert.Equal(t, stopped{}, recover())
		}()
		run(&out, []string{good, bad, next})
		t.Error("run returned after a failure")
	}()

	assert.Equal(t, "a", out.String())
	assert.Equal(t,
		"Failed to read input files due to: while reading "+bad+", while creating string got problem caused by: invalid utf-8 sequence of 1 bytes from index 2\n",
		report.String())
}

func TestRun_CopiesAllFiles(t *testing.T) {
	a := writeFile(t, "a.txt", []byte("a"))
	b := writeFile(t, "b.txt", []byte("é"))

	var out bytes.Buffer
	run(&out, []string{a, b})
	assert.Equal(t, "aé", out.String())
}
