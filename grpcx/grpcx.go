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

// Package grpcx projects problems onto gRPC statuses and back.
package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/problem"
)

// InfoReason is the ErrorInfo reason attached to every projected status.
const InfoReason = "PROBLEM"

// Metadata keys of the attached ErrorInfo.
const (
	MetaDepth = "depth"
	MetaCause = "cause"
)

// Status converts err into a Problem and builds a gRPC status from it.
//
// The status message is the canonical problem text. Two details are
// attached when possible:
//   - errdetails.ErrorInfo with the chain depth and the root cause text;
//   - errdetails.DebugInfo with the backtrace, when one was captured.
//
// If attaching details fails the bare status is returned.
func Status(err error, opts ...Option) *gstatus.Status {
	cfg := newConfig(opts)
	p := problem.FromError(err)

	base := gstatus.New(cfg.code, p.Error())
	info := &errdetails.ErrorInfo{
		Reason: InfoReason,
		Domain: cfg.domain,
		Metadata: map[string]string{
			MetaDepth: strconv.Itoa(p.Depth()),
			MetaCause: p.Root().Message(),
		},
	}

	var (
		with *gstatus.Status
		werr error
	)
	if bt := p.Backtrace(); bt != "" {
		debug := &errdetails.DebugInfo{
			StackEntries: strings.Split(bt, "\n"),
			Detail:       p.Error(),
		}
		with, werr = base.WithDetails(info, debug)
	} else {
		with, werr = base.WithDetails(info)
	}
	if werr != nil {
		return base
	}
	return with
}

// FromStatusError converts an error returned by a gRPC client into a
// Problem carrying only the status message, without the
// "rpc error: code = ... desc = ..." envelope. Errors that carry no gRPC
// status are converted with problem.FromError.
func FromStatusError(err error) *problem.Problem {
	if err == nil {
		return problem.Unknown()
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return problem.FromError(err)
	}
	return problem.Cause(st.Message())
}

// ExtractInfo pulls the ErrorInfo attached by Status out of a gRPC error.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors into problem-shaped statuses.
//
// A failing handler's error gets a "handling <full method>" context layer
// and is projected with Status. Errors that already carry a gRPC status are
// returned as is. Context cancellation and deadline errors keep their
// canonical codes unless WithCode is given.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			return nil, err
		}

		callOpts := opts
		if ce := gstatus.FromContextError(err); ce.Code() != codes.Unknown {
			callOpts = append([]Option{WithCode(ce.Code())}, opts...)
		}
		return nil, Status(problem.While(err, "handling "+info.FullMethod), callOpts...).Err()
	}
}
