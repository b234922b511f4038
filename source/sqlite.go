// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"time"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/gogpu/ggplot/internal/logging"
)

// OpenSQLite opens a SQLite database file with the pure Go driver.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	var version string
	if err := db.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	logging.Logger().Debug("sqlite opened", "path", path, "version", version)
	return db, nil
}

// FromSQL runs query and loads every result column into a new source.
// A column becomes numeric when each non-NULL value in it is an integer,
// a float, a numeric string or a time (stored as Unix seconds); otherwise
// it becomes a string column. NULLs load as NaN or "".
func FromSQL(ctx context.Context, db *sql.DB, query string, args ...any) (*ColumnDataSource, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("source: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("source: columns: %w", err)
	}
	raw := make([][]any, len(names))
	for rows.Next() {
		vals := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("source: scan: %w", err)
		}
		for i, v := range vals {
			raw[i] = append(raw[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: rows: %w", err)
	}

	numbers := make(map[string][]float64)
	strs := make(map[string][]string)
	for i, name := range names {
		if fs, ok := asNumbers(raw[i]); ok {
			numbers[name] = fs
		} else {
			strs[name] = asStrings(raw[i])
		}
	}
	src := NewColumnDataSource()
	if err := src.SetColumns(numbers, strs); err != nil {
		return nil, err
	}
	logging.Logger().Debug("sql source loaded", "columns", len(names), "rows", src.Len())
	return src, nil
}

func asNumbers(vs []any) ([]float64, bool) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		switch x := v.(type) {
		case nil:
			out[i] = math.NaN()
		case int64:
			out[i] = float64(x)
		case float64:
			out[i] = x
		case bool:
			if x {
				out[i] = 1
			}
		case time.Time:
			out[i] = float64(x.Unix())
		case []byte:
			f, err := strconv.ParseFloat(string(x), 64)
			if err != nil {
				return nil, false
			}
			out[i] = f
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, false
			}
			out[i] = f
		default:
			return nil, false
		}
	}
	return out, true
}

func asStrings(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		switch x := v.(type) {
		case nil:
		case []byte:
			out[i] = string(x)
		case string:
			out[i] = x
		case time.Time:
			out[i] = x.Format(time.RFC3339)
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}
