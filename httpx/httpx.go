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

// Package httpx writes problems as JSON error bodies.
package httpx

import (
	"encoding/json"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/problem/grpcx"
)

// Writer is a thin adapter that turns an error into an HTTP response.
//
// The body is the JSON form of google.rpc.Status as built by grpcx.Status,
// so HTTP and gRPC clients see the same message and details.
type Writer struct {
	// Status is the HTTP status to write. Zero means 500.
	Status int

	// Options are passed to grpcx.Status.
	Options []grpcx.Option
}

// Write converts err into a Problem and serializes it to rw. A nil err
// writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	code := w.Status
	if code == 0 {
		code = http.StatusInternalServerError
	}

	st := grpcx.Status(err, w.Options...)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	// protojson is required for the Any-typed details to carry their
	// "@type" and for json_name field naming.
	b, err := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(st.Proto())
	if err != nil {
		// protojson rejects invalid UTF-8; fall back to code and message
		// only, with invalid bytes replaced.
		b, _ = json.Marshal(fallbackBody{Code: int32(st.Code()), Message: st.Message()})
	}
	_, _ = rw.Write(b)
}

// fallbackBody mirrors the code and message fields of google.rpc.Status.
type fallbackBody struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}
