// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DataSourceResolution records the outcome of resolving a database to the
// data source its queries must target. It is created fresh inside a single
// QueryDatabase call and never cached — a later call re-resolves even for
// the same database.
type DataSourceResolution struct {
	// DatabaseID is the database identifier the caller supplied.
	DatabaseID string
	// DataSourceID is the selected data source.
	DataSourceID string
	// Candidates is how many data sources the descriptor listed.
	Candidates int
	// ResolvedAt is when the resolution happened.
	ResolvedAt time.Time
}

// ResolveDataSource resolves a database ID to the data source a query
// must target. Queries cannot address a database directly — the database
// is a container and the data source is the queryable child.
//
// Selection policy: when the descriptor lists several data sources, the
// first in the order the API returned is selected. The API documents no
// canonical ordering for this list, so the choice is logged at debug level
// to keep it observable. A descriptor with zero data sources fails with
// ErrNoDataSources.
func (c *Client) ResolveDataSource(ctx context.Context, databaseID string) (*DataSourceResolution, error) {
	body, err := c.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("resolving data source for database %s: %w", databaseID, err)
	}

	var database Database
	if err := json.Unmarshal(body, &database); err != nil {
		return nil, fmt.Errorf("notion: failed to parse database descriptor for %s: %w", databaseID, err)
	}

	if len(database.DataSources) == 0 {
		return nil, fmt.Errorf("database %s: %w", databaseID, ErrNoDataSources)
	}

	selected := database.DataSources[0]
	if len(database.DataSources) > 1 {
		c.logger.Debug("database has multiple data sources, selecting first",
			"database_id", databaseID,
			"data_source_id", selected.ID,
			"candidates", len(database.DataSources),
		)
	}

	return &DataSourceResolution{
		DatabaseID:   databaseID,
		DataSourceID: selected.ID,
		Candidates:   len(database.DataSources),
		ResolvedAt:   time.Now(),
	}, nil
}

// QueryDatabase queries a database by first resolving its data source and
// then querying that data source. The two-step sequence runs fresh on
// every call; the query result is returned unmodified.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, request QueryRequest) (json.RawMessage, error) {
	resolution, err := c.ResolveDataSource(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	return c.QueryDataSource(ctx, resolution.DataSourceID, request)
}
