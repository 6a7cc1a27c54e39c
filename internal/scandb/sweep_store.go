package scandb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/navscan/internal/scan"
)

// SweepRecord is the stored metadata for one captured sweep.
type SweepRecord struct {
	ID         int64     `json:"id"`
	SweepID    string    `json:"sweep_id"`
	SensorID   string    `json:"sensor_id"`
	CapturedAt time.Time `json:"captured_at"`
	PointCount int       `json:"point_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// SweepStore provides persistence for captured sweeps. Points are stored in
// polar form in insertion order, so a reloaded frame round-trips through the
// same lazy conversion and sorting as a live one.
type SweepStore struct {
	db *sql.DB
}

// NewSweepStore creates a new SweepStore.
func NewSweepStore(db *DB) *SweepStore {
	return &SweepStore{db: db.DB}
}

// InsertSweep persists one frame for a sensor and returns the generated sweep ID.
func (s *SweepStore) InsertSweep(sensorID string, frame *scan.Frame) (string, error) {
	sweepID := uuid.NewString()
	pts := frame.Polar(false)

	var capturedAt *string
	if ts := frame.Timestamp(); !ts.IsZero() {
		v := ts.UTC().Format(time.RFC3339Nano)
		capturedAt = &v
	}

	err := retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		_, err = tx.Exec(
			`INSERT INTO scan_sweeps (sweep_id, sensor_id, captured_at, point_count) VALUES (?, ?, ?, ?)`,
			sweepID, sensorID, capturedAt, len(pts),
		)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO scan_points (sweep_id, idx, radius, theta) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, p := range pts {
			if _, err := stmt.Exec(sweepID, i, p.Radius, p.Theta); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return "", fmt.Errorf("inserting sweep for sensor %s: %w", sensorID, err)
	}
	return sweepID, nil
}

// GetSweep loads a sweep and rebuilds its frame. Returns (nil, nil, nil) when
// the sweep does not exist.
func (s *SweepStore) GetSweep(sweepID string) (*SweepRecord, *scan.Frame, error) {
	rec, err := s.getRecord(sweepID)
	if err != nil || rec == nil {
		return rec, nil, err
	}

	rows, err := s.db.Query(
		`SELECT radius, theta FROM scan_points WHERE sweep_id = ? ORDER BY idx`, sweepID)
	if err != nil {
		return nil, nil, fmt.Errorf("querying points for sweep %s: %w", sweepID, err)
	}
	defer rows.Close()

	pts := make([]scan.PointRT, 0, rec.PointCount)
	for rows.Next() {
		var p scan.PointRT
		if err := rows.Scan(&p.Radius, &p.Theta); err != nil {
			return nil, nil, fmt.Errorf("scanning point row for sweep %s: %w", sweepID, err)
		}
		pts = append(pts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating points for sweep %s: %w", sweepID, err)
	}

	frame := scan.NewFrameFromRTAt(pts, rec.CapturedAt)
	return rec, frame, nil
}

func (s *SweepStore) getRecord(sweepID string) (*SweepRecord, error) {
	var rec SweepRecord
	var capturedAt sql.NullString
	var createdAt string

	err := s.db.QueryRow(
		`SELECT id, sweep_id, sensor_id, captured_at, point_count, created_at
		 FROM scan_sweeps WHERE sweep_id = ?`, sweepID).
		Scan(&rec.ID, &rec.SweepID, &rec.SensorID, &capturedAt, &rec.PointCount, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying sweep %s: %w", sweepID, err)
	}

	if capturedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, capturedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing captured_at for sweep %s: %w", sweepID, err)
		}
		rec.CapturedAt = t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999Z", createdAt); err == nil {
		rec.CreatedAt = t
	} else if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		rec.CreatedAt = t
	}

	return &rec, nil
}

// ListSweeps returns recent sweeps for a sensor, most recent first, omitting
// point data.
func (s *SweepStore) ListSweeps(sensorID string, limit int) ([]SweepRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := s.db.Query(
		`SELECT id, sweep_id, sensor_id, captured_at, point_count, created_at
		 FROM scan_sweeps WHERE sensor_id = ? ORDER BY created_at DESC LIMIT ?`,
		sensorID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sweeps: %w", err)
	}
	defer rows.Close()

	var sweeps []SweepRecord
	for rows.Next() {
		var rec SweepRecord
		var capturedAt sql.NullString
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.SweepID, &rec.SensorID, &capturedAt, &rec.PointCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning sweep row: %w", err)
		}
		if capturedAt.Valid {
			if t, err := time.Parse(time.RFC3339Nano, capturedAt.String); err == nil {
				rec.CapturedAt = t
			}
		}
		if t, err := time.Parse("2006-01-02T15:04:05.999Z", createdAt); err == nil {
			rec.CreatedAt = t
		}
		sweeps = append(sweeps, rec)
	}

	return sweeps, rows.Err()
}

// DeleteSweep removes a sweep and its points.
func (s *SweepStore) DeleteSweep(sweepID string) error {
	return retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()
		// The points FK is declared ON DELETE CASCADE but sqlite only honors
		// it with foreign_keys enabled, so delete explicitly.
		if _, err := tx.Exec(`DELETE FROM scan_points WHERE sweep_id = ?`, sweepID); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM scan_sweeps WHERE sweep_id = ?`, sweepID); err != nil {
			return err
		}
		return tx.Commit()
	})
}
