package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/ghostchase/internal/world"
)

// RunRecord is one finished run.
type RunRecord struct {
	ID           int64
	StartedAt    time.Time
	EndedAt      time.Time
	Outcome      string
	Ticks        int64
	Pickups      int32
	Strikes      int32
	GhostDefeats int32
	Respawns     int32
	Layout       string
}

// NewRunRecord converts a scene result into a record.
func NewRunRecord(res world.Result) RunRecord {
	return RunRecord{
		StartedAt:    res.StartedAt,
		EndedAt:      res.EndedAt,
		Outcome:      res.Outcome.String(),
		Ticks:        int64(res.Stats.Ticks),
		Pickups:      int32(res.Stats.Pickups),
		Strikes:      int32(res.Stats.Strikes),
		GhostDefeats: int32(res.Stats.GhostDefeats),
		Respawns:     int32(res.Stats.Respawns),
		Layout:       res.Layout,
	}
}

// RunRepository stores run history in PostgreSQL.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a new repository.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Save inserts a run and returns its id.
func (r *RunRepository) Save(ctx context.Context, rec RunRecord) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO runs (started_at, ended_at, outcome, ticks, pickups, strikes, ghost_defeats, respawns, layout)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		rec.StartedAt, rec.EndedAt, rec.Outcome, rec.Ticks,
		rec.Pickups, rec.Strikes, rec.GhostDefeats, rec.Respawns, rec.Layout,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("saving run (outcome %s): %w", rec.Outcome, err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first. A non-empty layout
// restricts the result to runs on that arena.
func (r *RunRepository) Recent(ctx context.Context, layout string, limit int) ([]RunRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, started_at, ended_at, outcome, ticks, pickups, strikes, ghost_defeats, respawns, layout
		 FROM runs
		 WHERE $1::text = '' OR layout = $1::text
		 ORDER BY id DESC LIMIT $2`, layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.StartedAt, &rec.EndedAt, &rec.Outcome, &rec.Ticks,
			&rec.Pickups, &rec.Strikes, &rec.GhostDefeats, &rec.Respawns, &rec.Layout,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// CountByOutcome returns how many runs ended with each outcome. A non-empty
// layout restricts the count to runs on that arena.
func (r *RunRepository) CountByOutcome(ctx context.Context, layout string) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT outcome, COUNT(*) FROM runs
		 WHERE $1::text = '' OR layout = $1::text
		 GROUP BY outcome`, layout,
	)
	if err != nil {
		return nil, fmt.Errorf("counting runs: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning run count: %w", err)
		}
		counts[outcome] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run counts: %w", err)
	}
	return counts, nil
}
