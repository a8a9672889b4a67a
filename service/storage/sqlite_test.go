package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	svc, err := NewService(dbPath)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func sampleRun(uuid string) SaveRunInput {
	return SaveRunInput{
		RunUUID:    uuid,
		InputPath:  "/fmu/test_advanced",
		OutputDir:  "/fmu/test_advanced",
		DurationMS: 12,
		Version:    "dev",
		Configurations: []ConfigurationRecord{
			{
				ModelIdentifier: "test_advanced",
				Platform:        "x86_64-linux",
				CStandard:       "99",
				SourceFiles:     2,
				Definitions:     3,
				IncludeDirs:     2,
				Libraries:       1,
				OutputPath:      "/fmu/test_advanced/CMakeLists.txt",
				BytesWritten:    2048,
			},
			{
				ModelIdentifier: "test_basic",
				SourceFiles:     1,
				Definitions:     1,
				OutputPath:      "/fmu/test_advanced/test_basic/CMakeLists.txt",
				BytesWritten:    1024,
			},
		},
	}
}

func TestSaveRunAndQueries(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	runID, err := svc.SaveRun(ctx, sampleRun("run-1"))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if runID <= 0 {
		t.Fatalf("expected positive runID, got %d", runID)
	}

	recent, err := svc.GetRecentRuns("", 10)
	if err != nil {
		t.Fatalf("GetRecentRuns failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent run, got %d", len(recent))
	}
	if recent[0].Configurations != 2 || recent[0].SourceFiles != 3 || recent[0].BytesWritten != 3072 {
		t.Fatalf("unexpected run aggregates: %+v", recent[0])
	}

	points, err := svc.GetTrends("", 30)
	if err != nil {
		t.Fatalf("GetTrends failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 trend point, got %d", len(points))
	}
	if points[0].Runs != 1 || points[0].Configurations != 2 || points[0].SourceFiles != 3 {
		t.Fatalf("unexpected trend point: %+v", points[0])
	}

	configs, err := svc.ListConfigurations(runID)
	if err != nil {
		t.Fatalf("ListConfigurations failed: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("expected 2 configurations, got %d", len(configs))
	}
	if configs[0].ModelIdentifier != "test_advanced" || configs[0].CStandard != "99" {
		t.Fatalf("unexpected first configuration: %+v", configs[0])
	}
}

func TestGetRecentRunsModelFilter(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if _, err := svc.SaveRun(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	other := sampleRun("run-2")
	other.Configurations = other.Configurations[:1]
	if _, err := svc.SaveRun(ctx, other); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := svc.GetRecentRuns("test_basic", 10)
	if err != nil {
		t.Fatalf("GetRecentRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunUUID != "run-1" {
		t.Fatalf("expected only run-1 for test_basic, got %+v", runs)
	}
}

func TestSaveRunGeneratesUUID(t *testing.T) {
	svc := newTestStorage(t)

	input := sampleRun("")
	if _, err := svc.SaveRun(context.Background(), input); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := svc.GetRecentRuns("", 1)
	if err != nil {
		t.Fatalf("GetRecentRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunUUID == "" {
		t.Fatalf("expected generated run uuid, got %+v", runs)
	}
}

func TestSaveRunRequiresInputPath(t *testing.T) {
	svc := newTestStorage(t)
	if _, err := svc.SaveRun(context.Background(), SaveRunInput{}); err == nil {
		t.Fatal("expected error for missing input path")
	}
}

func TestMaintenanceOperations(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if _, err := svc.SaveRun(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	if err := svc.Vacuum(ctx); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}

	if _, err := svc.PurgeOlderThan(ctx, 0); err == nil {
		t.Fatal("expected error for non-positive days")
	}

	// Today's run is within the window and must survive.
	count, err := svc.PurgeOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("PurgeOlderThan failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 purged runs, got %d", count)
	}
}
