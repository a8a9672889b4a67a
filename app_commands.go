package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/fmitools/fmi-bd2cmake/service/storage"
	"github.com/fmitools/fmi-bd2cmake/shared/trends"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge runs older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: fmi-bd2cmake db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "reindex":
		return store.Reindex(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d runs\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	modelID := fs.String("model-id", "", "Model identifier filter")
	limit := fs.Int("limit", 20, "Number of rows to list")
	days := fs.Int("days", 30, "Number of days for trends")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: fmi-bd2cmake history <list|show|trends>")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		runs, err := store.GetRecentRuns(*modelID, *limit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			dryRun := ""
			if r.DryRun {
				dryRun = "\t(dry run)"
			}
			fmt.Printf("%d\t%s\t%s\t%d configs\t%d bytes%s\n",
				r.RunID, r.RunTimestamp.Format("2006-01-02 15:04:05"), r.InputPath,
				r.Configurations, r.BytesWritten, dryRun)
		}
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: fmi-bd2cmake history show <run-id>")
		}
		runID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return err
		}
		configs, err := store.ListConfigurations(runID)
		if err != nil {
			return err
		}
		for _, c := range configs {
			fmt.Printf("%s\t%s\tC=%s\tC++=%s\t%d sources\t%s\n",
				c.ModelIdentifier, c.Platform, c.CStandard, c.CXXStandard,
				c.SourceFiles, c.OutputPath)
		}
		return nil
	case "trends":
		points, err := store.GetTrends(*modelID, *days)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No stored runs in the selected window")
			return nil
		}
		trends.RenderTrendTable(points)
		return nil
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}
