// Copyright 2025 Addykit, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across the application.
// Every failure in a run is fatal and maps to exit code 1; the sentinels exist
// so the CLI edge can report each failure class with the right context.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrInvalidToken indicates the alias service rejected the bearer token.
	ErrInvalidToken = errors.New("invalid api token")

	// ErrAliasesNotFound indicates the alias endpoint does not exist or is not accessible.
	ErrAliasesNotFound = errors.New("alias endpoint not found")

	// ErrRateLimit indicates the alias service rate limit has been exceeded.
	ErrRateLimit = errors.New("api rate limit exceeded")

	// ErrRequestFailed indicates a page request returned a failure status code.
	ErrRequestFailed = errors.New("page request failed")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrMissingColumn indicates a requested column is absent from a fetched record.
	ErrMissingColumn = errors.New("missing column in record")

	// ErrUnknownColumn indicates a requested column name is not in the known alias schema.
	ErrUnknownColumn = errors.New("unknown column name")

	// ErrInvalidLogLevel indicates an unrecognized log level string.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
