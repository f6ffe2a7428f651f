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

package grpcx

import "google.golang.org/grpc/codes"

// DefaultDomain is the ErrorInfo domain used when none is configured.
const DefaultDomain = "dirpx.dev/problem"

// Option is a functional option for projecting a Problem onto a gRPC status.
type Option func(*config)

type config struct {
	code   codes.Code
	domain string
}

func newConfig(opts []Option) config {
	cfg := config{code: codes.Unknown, domain: DefaultDomain}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCode sets the status code. The default is codes.Unknown, since a
// Problem carries no classification of its own.
func WithCode(c codes.Code) Option {
	return func(cfg *config) { cfg.code = c }
}

// WithDomain sets the ErrorInfo domain, usually the service name.
func WithDomain(d string) Option {
	return func(cfg *config) {
		if d != "" {
			cfg.domain = d
		}
	}
}
