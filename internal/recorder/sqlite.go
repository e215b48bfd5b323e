package recorder

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *slog.Logger
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *slog.Logger) (*SQLiteRecorder, error) {
	if log == nil {
		log = slog.Default()
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read the audit tables while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With("component", "recorder"), now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			product_id  TEXT NOT NULL,
			base_price  REAL,
			volatility  REAL,
			trend       REAL,
			records     INTEGER,
			first_date  TEXT,
			last_date   TEXT,
			duration_us INTEGER,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generations_ts ON generations(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_generations_product ON generations(product_id)`,

		`CREATE TABLE IF NOT EXISTS aggregations (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			product_id          TEXT NOT NULL,
			window_name         TEXT,
			records             INTEGER,
			average_price       INTEGER,
			total_units_sold    INTEGER,
			peak_active_sellers INTEGER,
			error               TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aggregations_ts ON aggregations(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_aggregations_product ON aggregations(product_id, window_name)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordGeneration(evt *GenerationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO generations
		(timestamp, product_id, base_price, volatility, trend, records,
		 first_date, last_date, duration_us, error)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ProductID, evt.BasePrice, evt.Volatility, evt.Trend,
		evt.Records, evt.FirstDate, evt.LastDate, evt.Duration.Microseconds(), evt.Err,
	)
	return err
}

func (r *SQLiteRecorder) RecordAggregation(evt *AggregationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO aggregations
		(timestamp, product_id, window_name, records, average_price,
		 total_units_sold, peak_active_sellers, error)
		VALUES (?,?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ProductID, evt.Window, evt.Records, evt.AveragePrice,
		evt.TotalUnitsSold, evt.PeakActiveSellers, evt.Err,
	)
	return err
}

// GenerationCount returns how many generations were recorded for productID,
// or for all products when productID is empty.
func (r *SQLiteRecorder) GenerationCount(productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	var err error
	if productID == "" {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM generations`).Scan(&n)
	} else {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM generations WHERE product_id = ?`, productID).Scan(&n)
	}
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
