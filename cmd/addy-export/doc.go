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

// Package main implements the addy-export command-line interface.
// This tool fetches every alias record from an addy.io account and writes
// the selected fields to a CSV file in one pass.
//
// The CLI supports:
//   - Token passed literally or as a path to a file holding the token
//   - Column selection with --columns, validated against the known schema
//   - Column inference (sorted union of all fields) when --columns is omitted
//   - Log level control with --log-level
//   - Optional YAML configuration via --config or standard locations
//
// Usage:
//
//	addy-export <token> <output-file> [flags]
//
// Example:
//
//	addy-export ~/.addy-token aliases.csv --columns email,description
//
// Exit codes:
//   - 0: Success
//   - 1: Any failure (transport, schema validation, configuration)
package main
