package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gogpu/glyphswap"
)

// IndexFile is the conventional name of the index inside a domain directory.
const IndexFile = "index.db"

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNoRun is returned when a task is recorded before BeginRun.
var ErrNoRun = errors.New("dataset: no run started")

// Index is a SQLite catalog of generated tasks. Each generation run gets a
// random id; tasks keep the id of the run that last wrote them.
type Index struct {
	db   *sql.DB
	path string

	mu    sync.Mutex
	runID string
}

// Record is one indexed task.
type Record struct {
	TaskID   string
	RunID    string
	Domain   string
	Prompt   string
	Before   []string
	After    []string
	Position int
	Old      string
	New      string
	// Video is the video file name inside Dir, empty when absent.
	Video string
	// Dir is the task directory relative to the output root.
	Dir string
}

// Summary aggregates an index.
type Summary struct {
	Runs      int
	Tasks     int
	Videos    int
	LastRun   string
	LastRunAt time.Time
}

// OpenIndex opens or creates the index at path.
func OpenIndex(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("dataset: creating index directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening index: %w", err)
	}
	db.SetMaxOpenConns(1)

	ix := &Index{db: db, path: path}
	if err := ix.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ix, nil
}

func (ix *Index) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		seed TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS tasks (
		task_id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		domain TEXT NOT NULL,
		prompt TEXT NOT NULL,
		before_seq TEXT NOT NULL,
		after_seq TEXT NOT NULL,
		position INTEGER NOT NULL,
		old_symbol TEXT NOT NULL,
		new_symbol TEXT NOT NULL,
		video TEXT NOT NULL DEFAULT '',
		dir TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_run ON tasks(run_id);
	`
	if _, err := ix.db.Exec(schema); err != nil {
		return fmt.Errorf("dataset: creating index schema: %w", err)
	}
	return nil
}

// Path returns the database file.
func (ix *Index) Path() string {
	return ix.path
}

// BeginRun registers a new generation run and returns its id. Subsequent
// records belong to it.
func (ix *Index) BeginRun(ctx context.Context, domain string, seed uint64) (string, error) {
	id := uuid.NewString()
	_, err := ix.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, domain, seed, created_at) VALUES (?, ?, ?, ?)`,
		id, domain, strconv.FormatUint(seed, 10), time.Now().UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("dataset: recording run: %w", err)
	}

	ix.mu.Lock()
	ix.runID = id
	ix.mu.Unlock()

	glyphswap.Logger().Debug("index run started", "run", id, "index", ix.path)
	return id, nil
}

// Record stores t, written to dir with the given video file name.
// A task already present under the same id is replaced.
func (ix *Index) Record(ctx context.Context, t *glyphswap.Task, dir, video string) error {
	ix.mu.Lock()
	runID := ix.runID
	ix.mu.Unlock()
	if runID == "" {
		return ErrNoRun
	}

	before, err := json.Marshal(t.Pair.Before)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	after, err := json.Marshal(t.Pair.After)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	_, err = ix.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO tasks
			(task_id, run_id, domain, prompt, before_seq, after_seq, position, old_symbol, new_symbol, video, dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, runID, t.Domain, t.Prompt, string(before), string(after),
		t.Pair.Position, t.Pair.Old, t.Pair.New, video, filepath.ToSlash(dir))
	if err != nil {
		return fmt.Errorf("dataset: indexing %s: %w", t.ID, err)
	}
	return nil
}

// Tasks returns every indexed task ordered by id.
func (ix *Index) Tasks(ctx context.Context) ([]Record, error) {
	rows, err := ix.db.QueryContext(ctx, `
		SELECT task_id, run_id, domain, prompt, before_seq, after_seq, position, old_symbol, new_symbol, video, dir
		FROM tasks ORDER BY task_id`)
	if err != nil {
		return nil, fmt.Errorf("dataset: querying tasks: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var before, after string
		if err := rows.Scan(&r.TaskID, &r.RunID, &r.Domain, &r.Prompt, &before, &after,
			&r.Position, &r.Old, &r.New, &r.Video, &r.Dir); err != nil {
			return nil, fmt.Errorf("dataset: scanning task: %w", err)
		}
		if err := json.Unmarshal([]byte(before), &r.Before); err != nil {
			return nil, fmt.Errorf("dataset: task %s: %w", r.TaskID, err)
		}
		if err := json.Unmarshal([]byte(after), &r.After); err != nil {
			return nil, fmt.Errorf("dataset: task %s: %w", r.TaskID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Summary counts runs, tasks and videos and reports the latest run.
func (ix *Index) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	err := ix.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM runs),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM tasks WHERE video != '')`).Scan(&s.Runs, &s.Tasks, &s.Videos)
	if err != nil {
		return nil, fmt.Errorf("dataset: summarizing index: %w", err)
	}
	if s.Runs == 0 {
		return &s, nil
	}

	var created string
	err = ix.db.QueryRowContext(ctx,
		`SELECT run_id, created_at FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&s.LastRun, &created)
	if err != nil {
		return nil, fmt.Errorf("dataset: summarizing index: %w", err)
	}
	if s.LastRunAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("dataset: run %s: %w", s.LastRun, err)
	}
	return &s, nil
}

// Close closes the database.
func (ix *Index) Close() error {
	return ix.db.Close()
}
