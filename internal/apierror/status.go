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

package apierror

import "fmt"

// StatusError reports a page request that came back with a failure status
// code. It wraps the sentinel matching the status class so errors.Is keeps
// working at the CLI edge, while retry classification can inspect the exact
// code instead of matching message text.
type StatusError struct {
	Page       int
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("page %d: status %d: %v", e.Page, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
