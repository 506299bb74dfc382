package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists pass history to a SQLite database. Decimal amounts
// are stored as their exact string form in TEXT columns.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS passes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			trigger_type TEXT,
			source      TEXT,
			total_sum   TEXT,
			cash_amount TEXT,
			cash_goal   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_passes_ts ON passes(timestamp)`,

		`CREATE TABLE IF NOT EXISTS holding_results (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			pass_id    INTEGER NOT NULL REFERENCES passes(id),
			position   INTEGER NOT NULL,
			holding_id TEXT,
			code       TEXT,
			category   INTEGER,
			amount     TEXT,
			goal       TEXT,
			delta      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_holding_results_pass ON holding_results(pass_id)`,

		`CREATE TABLE IF NOT EXISTS category_results (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			pass_id   INTEGER NOT NULL REFERENCES passes(id),
			category  INTEGER,
			rate      TEXT,
			category_sum TEXT,
			target    TEXT,
			deviation TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_category_results_pass ON category_results(pass_id)`,

		`CREATE TABLE IF NOT EXISTS cash_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			cash_before INTEGER,
			cash_after  INTEGER,
			note      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cash_ts ON cash_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordPass stores the pass and all its per-holding and per-category rows
// in one transaction. It returns the pass id.
func (r *SQLiteRecorder) RecordPass(snap *PassSnapshot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO passes
		(timestamp, trigger_type, source, total_sum, cash_amount, cash_goal)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), string(snap.Trigger), snap.Source,
		snap.TotalSum.String(), snap.CashAmount.String(), snap.CashGoal.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert pass: %w", err)
	}
	passID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("pass id: %w", err)
	}

	for i, h := range snap.Holdings {
		if _, err := tx.Exec(`INSERT INTO holding_results
			(pass_id, position, holding_id, code, category, amount, goal, delta)
			VALUES (?,?,?,?,?,?,?,?)`,
			passID, i, h.ID, h.Code, int(h.Category),
			h.Amount.String(), h.Goal.String(), h.Delta.String(),
		); err != nil {
			return 0, fmt.Errorf("insert holding %s: %w", h.ID, err)
		}
	}

	for _, c := range snap.Categories {
		if _, err := tx.Exec(`INSERT INTO category_results
			(pass_id, category, rate, category_sum, target, deviation)
			VALUES (?,?,?,?,?,?)`,
			passID, int(c.Category), c.Rate.String(),
			c.Sum.String(), c.Target.String(), c.Deviation.String(),
		); err != nil {
			return 0, fmt.Errorf("insert category %v: %w", c.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return passID, nil
}

func (r *SQLiteRecorder) RecordCashChange(evt *CashEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO cash_history
		(timestamp, cash_before, cash_after, note)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Before, evt.After, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
