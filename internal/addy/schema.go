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

import (
	"fmt"
	"strings"

	apperrors "github.com/addykit/addy-export/internal/errors"
)

// KnownColumns is the fixed allow-list of alias record fields the service
// is known to return. It documents the remote schema and guards --columns
// selections before any network call; it must be kept in sync with the
// service by hand.
var KnownColumns = []string{
	"id",
	"user_id",
	"aliasable_id",
	"aliasable_type",
	"local_part",
	"extension",
	"domain",
	"email",
	"active",
	"description",
	"from_name",
	"emails_forwarded",
	"emails_blocked",
	"emails_replied",
	"emails_sent",
	"recipients",
	"last_forwarded",
	"last_blocked",
	"last_replied",
	"last_sent",
	"created_at",
	"updated_at",
	"deleted_at",
}

var knownColumnSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(KnownColumns))
	for _, name := range KnownColumns {
		set[name] = struct{}{}
	}
	return set
}()

// ValidateColumnNames checks each requested column name against the known
// schema. It reports every unknown name at once so a typo-ridden invocation
// fails with one actionable message instead of one per run.
func ValidateColumnNames(columns []string) error {
	var unknown []string
	for _, name := range columns {
		if _, ok := knownColumnSet[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: [%s]", apperrors.ErrUnknownColumn, strings.Join(unknown, ", "))
	}
	return nil
}
