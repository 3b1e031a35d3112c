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
	"context"

	"github.com/rs/zerolog"
)

// Pager walks the alias listing page by page. It requests page 1, 2, 3, …
// until a page comes back with zero records, then returns the concatenation
// of every non-empty page in server-provided order. One request is in flight
// at a time.
type Pager struct {
	client Client
	log    zerolog.Logger
}

// NewPager creates a Pager over the given client.
func NewPager(client Client, log zerolog.Logger) *Pager {
	return &Pager{client: client, log: log}
}

// FetchAll retrieves every alias record. On the first failed page request it
// returns the error unchanged and discards everything fetched so far; the
// caller writes no output in that case.
func (p *Pager) FetchAll(ctx context.Context) ([]Record, error) {
	var records []Record

	for page := 1; ; page++ {
		p.log.Debug().Int("page", page).Msg("fetching page")

		result, err := p.client.FetchAliasPage(ctx, page)
		if err != nil {
			return nil, err
		}

		if len(result.Records) == 0 {
			p.log.Debug().Int("page", page).Msg("empty page, listing exhausted")
			break
		}

		records = append(records, result.Records...)
		p.log.Debug().
			Int("page", page).
			Int("page_records", len(result.Records)).
			Int("total_records", len(records)).
			Msg("page fetched")
	}

	p.log.Info().Int("records", len(records)).Msg("fetch complete")
	return records, nil
}
