//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package glotto

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

//
// SQLITE CACHE
//

// a full glottolog load is slow; once a languoid has been resolved it is kept on disk

const (
	CACHETABLE = `
	CREATE TABLE IF NOT EXISTS languoids (
		code   TEXT PRIMARY KEY,
		body   TEXT NOT NULL,
		stored TEXT NOT NULL
	)`
	CACHESELECT = `SELECT code, body FROM languoids`
	CACHEUPSERT = `INSERT OR REPLACE INTO languoids (code, body, stored) VALUES (?, ?, ?)`
)

// Cache - a Resolver that remembers what another Resolver told it
type Cache struct {
	db    *sql.DB
	src   Resolver
	mem   map[string]Languoid
	dirty map[string]Languoid
	mtx   sync.Mutex
}

// OpenCache - open (or create) the cache file and read everything in it
func OpenCache(ctx context.Context, path string, src Resolver) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	// one writer; sqlite does not want more
	db.SetMaxOpenConns(1)

	c := &Cache{
		db:    db,
		src:   src,
		mem:   make(map[string]Languoid),
		dirty: make(map[string]Languoid),
	}

	if err = c.slurp(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) slurp(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, CACHETABLE); err != nil {
		return fmt.Errorf("create cache table: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, CACHESELECT)
	if err != nil {
		return fmt.Errorf("read cache: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, body string
		if err = rows.Scan(&code, &body); err != nil {
			return fmt.Errorf("scan cache row: %w", err)
		}
		var l Languoid
		if err = json.Unmarshal([]byte(body), &l); err != nil {
			// a damaged entry is simply looked up again
			continue
		}
		c.mem[code] = l
	}
	return rows.Err()
}

// Resolve - from memory if possible, otherwise from the wrapped Resolver
func (c *Cache) Resolve(code string) (Languoid, error) {
	if code == "" {
		return Languoid{}, ErrNoCode
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if l, ok := c.mem[code]; ok {
		return l, nil
	}

	l, err := c.src.Resolve(code)
	if err != nil {
		return Languoid{}, err
	}
	c.mem[code] = l
	c.dirty[code] = l
	return l, nil
}

// Len - entries in memory
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.mem)
}

// Written - true if Save() has something to do
func (c *Cache) Written() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.dirty) > 0
}

// Save - write new entries to disk; returns the number written
func (c *Cache) Save(ctx context.Context) (int, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if len(c.dirty) == 0 {
		return 0, nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin cache save: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, CACHEUPSERT)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare cache save: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for code, l := range c.dirty {
		body, jerr := json.Marshal(l)
		if jerr != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("encode %s: %w", code, jerr)
		}
		if _, err = stmt.ExecContext(ctx, code, string(body), now); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("store %s: %w", code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cache save: %w", err)
	}

	n := len(c.dirty)
	c.dirty = make(map[string]Languoid)
	return n, nil
}

// Close - release the database; unsaved entries are lost
func (c *Cache) Close() error {
	return c.db.Close()
}
