package storage

import (
	"context"
	"time"
)

// Service defines run-history persistence and query operations.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(modelIdentifier string, limit int) ([]RunSummary, error)
	GetTrends(modelIdentifier string, days int) ([]TrendPoint, error)
	ListConfigurations(runID int64) ([]ConfigurationSnapshot, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveRunInput is the payload saved for a completed generation run.
type SaveRunInput struct {
	RunUUID        string
	InputPath      string
	OutputDir      string
	DurationMS     int64
	DryRun         bool
	Version        string
	FlagsJSON      string
	Configurations []ConfigurationRecord
}

// ConfigurationRecord is one generated configuration within a run.
type ConfigurationRecord struct {
	ModelIdentifier string
	Platform        string
	CStandard       string
	CXXStandard     string
	SourceFiles     int
	Definitions     int
	IncludeDirs     int
	Libraries       int
	OutputPath      string
	BytesWritten    int
}

// RunSummary provides compact run metadata.
type RunSummary struct {
	RunID          int64
	RunUUID        string
	InputPath      string
	RunTimestamp   time.Time
	Configurations int
	SourceFiles    int
	Definitions    int
	BytesWritten   int
	DryRun         bool
	Version        string
}

// TrendPoint is a daily aggregate of generation activity.
type TrendPoint struct {
	Date           string `json:"date"`
	Runs           int    `json:"runs"`
	Configurations int    `json:"configurations"`
	SourceFiles    int    `json:"source_files"`
	BytesWritten   int    `json:"bytes_written"`
}

// ConfigurationSnapshot is a run-time configuration view.
type ConfigurationSnapshot struct {
	ModelIdentifier string
	Platform        string
	CStandard       string
	CXXStandard     string
	SourceFiles     int
	Definitions     int
	OutputPath      string
	BytesWritten    int
}
