// Package inspector exports a snapshot of style rules and their
// declarations into a SQLite database (cached computed styles are not
// exported), so a host's devtools
// panel (or an ad-hoc `sqlite3` session) can query the current style
// index without linking against the engine's in-memory structures.
// Grounded on the teacher toolkit's own SQLite-backed query tool
// (cmd/dbu), which opens a *sql.DB via the same mattn/go-sqlite3 driver
// and feeds query results back into its own table widget.
package inspector

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	style "github.com/tekugo/styleengine"
)

const schema = `
CREATE TABLE IF NOT EXISTS rules (
	id       INTEGER PRIMARY KEY,
	selector TEXT NOT NULL,
	rank     INTEGER NOT NULL,
	batch    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS declarations (
	rule_id  INTEGER NOT NULL REFERENCES rules(id),
	property TEXT NOT NULL,
	value    TEXT NOT NULL
);
`

// Open creates (or truncates and recreates) a snapshot database at path
// and returns the open handle, ready for ExportSnapshot.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database %q: %w", path, err)
	}
	if _, err := db.Exec("DROP TABLE IF EXISTS declarations; DROP TABLE IF EXISTS rules;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("resetting snapshot database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot schema: %w", err)
	}
	return db, nil
}

// ExportSnapshot writes each rule in rules (for example the result of
// e.QuerySelector), and its declared (property, value) pairs, into db;
// rules indexed by e but not passed in are not written. Property names are
// resolved back from each declaration's dense key slots via e's
// property registry so the exported rows read like source CSS rather
// than raw integer keys.
func ExportSnapshot(db *sql.DB, e *style.Engine, rules []*style.Rule) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	insertRule, err := tx.Prepare("INSERT INTO rules (selector, rank, batch) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing rule insert: %w", err)
	}
	defer insertRule.Close()

	insertDecl, err := tx.Prepare("INSERT INTO declarations (rule_id, property, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing declaration insert: %w", err)
	}
	defer insertDecl.Close()

	for _, rule := range rules {
		res, err := insertRule.Exec(rule.Selector.Text, rule.Selector.Rank, rule.Selector.BatchNum)
		if err != nil {
			return fmt.Errorf("inserting rule %q: %w", rule.Selector.Text, err)
		}
		ruleID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading rule id for %q: %w", rule.Selector.Text, err)
		}

		for key := 0; key < rule.Decl.Len(); key++ {
			v, ok := rule.Decl.Get(key)
			if !ok {
				continue
			}
			def, ok := e.Properties.LookupByKey(key)
			if !ok {
				continue
			}
			if _, err := insertDecl.Exec(ruleID, def.Name, v.String()); err != nil {
				return fmt.Errorf("inserting declaration %s for rule %q: %w", def.Name, rule.Selector.Text, err)
			}
		}
	}

	return tx.Commit()
}
