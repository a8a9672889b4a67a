package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.fmi-bd2cmake/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.InputPath == "" {
		return 0, errors.New("input path is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = uuid.NewString()
	}

	sourceFiles, definitions, bytesWritten := 0, 0, 0
	for _, c := range input.Configurations {
		sourceFiles += c.SourceFiles
		definitions += c.Definitions
		bytesWritten += c.BytesWritten
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, input_path, output_dir, duration_ms,
			configuration_count, source_file_count, definition_count,
			bytes_written, dry_run, tool_version, run_flags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.InputPath, input.OutputDir, input.DurationMS,
		len(input.Configurations), sourceFiles, definitions,
		bytesWritten, boolToInt(input.DryRun), input.Version, input.FlagsJSON)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, c := range input.Configurations {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_configurations (
				run_id, model_identifier, platform, c_standard, cxx_standard,
				source_files, definitions, include_dirs, libraries,
				output_path, bytes_written
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, c.ModelIdentifier, c.Platform, c.CStandard, c.CXXStandard,
			c.SourceFiles, c.Definitions, c.IncludeDirs, c.Libraries,
			c.OutputPath, c.BytesWritten)
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) GetRecentRuns(modelIdentifier string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT DISTINCT r.run_id, r.run_uuid, r.input_path, r.run_timestamp,
			r.configuration_count, r.source_file_count, r.definition_count,
			r.bytes_written, r.dry_run, r.tool_version
		FROM runs r
	`
	args := []any{}
	if modelIdentifier != "" {
		query += `
		JOIN run_configurations rc ON rc.run_id = r.run_id
		WHERE rc.model_identifier = ?`
		args = append(args, modelIdentifier)
	}
	query += " ORDER BY r.run_timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		var dryRun int
		if err := rows.Scan(&r.RunID, &r.RunUUID, &r.InputPath, &r.RunTimestamp,
			&r.Configurations, &r.SourceFiles, &r.Definitions,
			&r.BytesWritten, &dryRun, &r.Version); err != nil {
			return nil, err
		}
		r.DryRun = dryRun != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *service) GetTrends(modelIdentifier string, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	query := `
		SELECT
			DATE(r.run_timestamp) as day,
			COUNT(DISTINCT r.run_id),
			SUM(r.configuration_count),
			SUM(r.source_file_count),
			SUM(r.bytes_written)
		FROM runs r
	`
	args := []any{}
	if modelIdentifier != "" {
		query += `
		JOIN run_configurations rc ON rc.run_id = r.run_id
		WHERE rc.model_identifier = ? AND r.run_timestamp >= DATETIME('now', ?)`
		args = append(args, modelIdentifier, fmt.Sprintf("-%d day", days))
	} else {
		query += " WHERE r.run_timestamp >= DATETIME('now', ?)"
		args = append(args, fmt.Sprintf("-%d day", days))
	}
	query += " GROUP BY DATE(r.run_timestamp) ORDER BY day ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []TrendPoint{}
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Runs, &p.Configurations, &p.SourceFiles, &p.BytesWritten); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *service) ListConfigurations(runID int64) ([]ConfigurationSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT model_identifier, platform, c_standard, cxx_standard,
			source_files, definitions, output_path, bytes_written
		FROM run_configurations WHERE run_id=? ORDER BY model_identifier ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ConfigurationSnapshot{}
	for rows.Next() {
		var c ConfigurationSnapshot
		if err := rows.Scan(&c.ModelIdentifier, &c.Platform, &c.CStandard, &c.CXXStandard,
			&c.SourceFiles, &c.Definitions, &c.OutputPath, &c.BytesWritten); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE run_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
