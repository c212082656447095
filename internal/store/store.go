// Package store handles SQLite persistence.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/verte-zerg/jyutquiz/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// HistoryLimit is the number of attempts kept per word.
const HistoryLimit = 20

// Store wraps SQLite access for performance records and sessions.
type Store struct {
	db *sqlx.DB
}

type performanceRow struct {
	Word         string  `db:"word"`
	EaseFactor   float64 `db:"ease_factor"`
	Interval     int     `db:"interval_days"`
	Repetitions  int     `db:"repetitions"`
	NextReviewAt string  `db:"next_review_at"`
}

type historyRow struct {
	Word      string `db:"word"`
	Seq       int    `db:"seq"`
	AttemptAt string `db:"attempted_at"`
	Correct   bool   `db:"correct"`
}

type sessionRow struct {
	ID        string `db:"id"`
	TestID    string `db:"test_id"`
	SectionID string `db:"section_id"`
	StartedAt string `db:"started_at"`
	EndedAt   string `db:"ended_at"`
	Score     int    `db:"score"`
	Total     int    `db:"total"`
}

type answerRow struct {
	SessionID     string `db:"session_id"`
	Number        int    `db:"number"`
	Type          string `db:"type"`
	Picture       string `db:"picture"`
	Prompt        string `db:"prompt"`
	CorrectAnswer string `db:"correct_answer"`
	UserAnswer    string `db:"user_answer"`
	Correct       bool   `db:"correct"`
	AnsweredAt    string `db:"answered_at"`
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS word_performance (
			word TEXT PRIMARY KEY,
			ease_factor REAL NOT NULL,
			interval_days INTEGER NOT NULL,
			repetitions INTEGER NOT NULL,
			next_review_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS word_history (
			word TEXT NOT NULL,
			seq INTEGER NOT NULL,
			attempted_at TEXT NOT NULL,
			correct INTEGER NOT NULL,
			PRIMARY KEY (word, seq)
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			test_id TEXT NOT NULL,
			section_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_answers (
			session_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			type TEXT NOT NULL,
			picture TEXT NOT NULL,
			prompt TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			user_answer TEXT NOT NULL,
			correct INTEGER NOT NULL,
			answered_at TEXT NOT NULL,
			PRIMARY KEY (session_id, number)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_word_performance_next_review ON word_performance(next_review_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadPerformance returns every stored performance record.
func (s *Store) LoadPerformance(ctx context.Context) (model.PerformanceTable, error) {
	var rows []performanceRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT word, ease_factor, interval_days, repetitions, next_review_at FROM word_performance`); err != nil {
		return nil, err
	}
	var history []historyRow
	if err := s.db.SelectContext(ctx, &history,
		`SELECT word, seq, attempted_at, correct FROM word_history ORDER BY word, seq`); err != nil {
		return nil, err
	}

	table := make(model.PerformanceTable, len(rows))
	for _, row := range rows {
		next, err := time.Parse(time.RFC3339Nano, row.NextReviewAt)
		if err != nil {
			return nil, fmt.Errorf("invalid review time for %q: %w", row.Word, err)
		}
		table[row.Word] = model.WordPerformanceRecord{
			Word:         row.Word,
			EaseFactor:   row.EaseFactor,
			Interval:     row.Interval,
			Repetitions:  row.Repetitions,
			NextReviewAt: next,
		}
	}
	for _, h := range history {
		rec, ok := table[h.Word]
		if !ok {
			continue
		}
		at, err := time.Parse(time.RFC3339Nano, h.AttemptAt)
		if err != nil {
			return nil, fmt.Errorf("invalid attempt time for %q: %w", h.Word, err)
		}
		rec.History = append(rec.History, model.HistoryEntry{At: at, Correct: h.Correct})
		table[h.Word] = rec
	}
	return table, nil
}

// SavePerformance upserts every record in table and replaces its history
// with the newest HistoryLimit attempts.
func (s *Store) SavePerformance(ctx context.Context, table model.PerformanceTable) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for word, rec := range table {
		row := performanceRow{
			Word:         word,
			EaseFactor:   rec.EaseFactor,
			Interval:     rec.Interval,
			Repetitions:  rec.Repetitions,
			NextReviewAt: rec.NextReviewAt.UTC().Format(time.RFC3339Nano),
		}
		if _, err = tx.NamedExecContext(ctx,
			`INSERT INTO word_performance (word, ease_factor, interval_days, repetitions, next_review_at)
			 VALUES (:word, :ease_factor, :interval_days, :repetitions, :next_review_at)
			 ON CONFLICT(word) DO UPDATE SET
				ease_factor = excluded.ease_factor,
				interval_days = excluded.interval_days,
				repetitions = excluded.repetitions,
				next_review_at = excluded.next_review_at`, row); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM word_history WHERE word = ?`, word); err != nil {
			return err
		}
		history := rec.History
		if len(history) > HistoryLimit {
			history = history[len(history)-HistoryLimit:]
		}
		for i, h := range history {
			if _, err = tx.NamedExecContext(ctx,
				`INSERT INTO word_history (word, seq, attempted_at, correct)
				 VALUES (:word, :seq, :attempted_at, :correct)`,
				historyRow{Word: word, Seq: i, AttemptAt: h.At.UTC().Format(time.RFC3339Nano), Correct: h.Correct}); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// ResetWord deletes the record and history for word. It reports whether a
// record existed.
func (s *Store) ResetWord(ctx context.Context, word string) (removed bool, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM word_performance WHERE word = ?`, word)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM word_history WHERE word = ?`, word); err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertSession stores a finished session and its answers.
func (s *Store) InsertSession(ctx context.Context, summary model.SessionSummary, answers []model.AnswerRecord) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.NamedExecContext(ctx,
		`INSERT INTO sessions (id, test_id, section_id, started_at, ended_at, score, total)
		 VALUES (:id, :test_id, :section_id, :started_at, :ended_at, :score, :total)`,
		sessionRow{
			ID:        summary.ID,
			TestID:    summary.TestID,
			SectionID: summary.SectionID,
			StartedAt: summary.StartedAt.UTC().Format(time.RFC3339Nano),
			EndedAt:   summary.EndedAt.UTC().Format(time.RFC3339Nano),
			Score:     summary.Score,
			Total:     summary.Total,
		}); err != nil {
		return err
	}

	for _, a := range answers {
		if _, err = tx.NamedExecContext(ctx,
			`INSERT INTO session_answers (session_id, number, type, picture, prompt, correct_answer, user_answer, correct, answered_at)
			 VALUES (:session_id, :number, :type, :picture, :prompt, :correct_answer, :user_answer, :correct, :answered_at)`,
			answerRow{
				SessionID:     summary.ID,
				Number:        a.Number,
				Type:          string(a.Type),
				Picture:       a.Picture,
				Prompt:        a.Prompt,
				CorrectAnswer: a.CorrectAnswer,
				UserAnswer:    a.UserAnswer,
				Correct:       a.Correct,
				AnsweredAt:    a.At.UTC().Format(time.RFC3339Nano),
			}); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SessionFilter narrows ListSessions.
type SessionFilter struct {
	TestID string
	Since  *time.Time
	Last   int
}

// ListSessions returns finished sessions oldest first.
func (s *Store) ListSessions(ctx context.Context, filter SessionFilter) ([]model.SessionSummary, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.TestID != "" {
		clauses = append(clauses, "test_id = ?")
		args = append(args, filter.TestID)
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, test_id, section_id, started_at, ended_at, score, total
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))

	var rows []sessionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(rows) > filter.Last {
		rows = rows[len(rows)-filter.Last:]
	}

	sessions := make([]model.SessionSummary, 0, len(rows))
	for _, row := range rows {
		started, err := time.Parse(time.RFC3339Nano, row.StartedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, row.EndedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, model.SessionSummary{
			ID:        row.ID,
			TestID:    row.TestID,
			SectionID: row.SectionID,
			StartedAt: started,
			EndedAt:   ended,
			Score:     row.Score,
			Total:     row.Total,
		})
	}
	return sessions, nil
}

// ListAnswers returns the answers of the given sessions keyed by session id.
func (s *Store) ListAnswers(ctx context.Context, sessionIDs []string) (map[string][]model.AnswerRecord, error) {
	result := map[string][]model.AnswerRecord{}
	if len(sessionIDs) == 0 {
		return result, nil
	}
	query, args, err := sqlx.In(`SELECT session_id, number, type, picture, prompt, correct_answer, user_answer, correct, answered_at
		FROM session_answers
		WHERE session_id IN (?)
		ORDER BY session_id, number`, sessionIDs)
	if err != nil {
		return nil, err
	}
	var rows []answerRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		at, err := time.Parse(time.RFC3339Nano, row.AnsweredAt)
		if err != nil {
			return nil, err
		}
		result[row.SessionID] = append(result[row.SessionID], model.AnswerRecord{
			Number:        row.Number,
			Type:          model.QuestionType(row.Type),
			Picture:       row.Picture,
			Prompt:        row.Prompt,
			CorrectAnswer: row.CorrectAnswer,
			UserAnswer:    row.UserAnswer,
			Correct:       row.Correct,
			At:            at,
		})
	}
	return result, nil
}
