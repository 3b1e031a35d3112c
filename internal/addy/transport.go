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

package addy

import "net/http"

// Version is the tool version, overridable at build time via -ldflags.
var Version = "dev"

// userAgent identifies this tool to the alias service.
var userAgent = "addy-export/" + Version

// authTransport injects the headers the alias API requires on every request:
// the bearer token, the JSON content type, and the X-Requested-With marker
// the service uses to distinguish API clients from browser sessions.
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so retries never see a mutated original request
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	cloned.Header.Set("Content-Type", "application/json")
	cloned.Header.Set("X-Requested-With", "XMLHttpRequest")
	cloned.Header.Set("User-Agent", userAgent)
	return t.base.RoundTrip(cloned)
}
