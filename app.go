// Package main is the entry point for the fmi-bd2cmake application.
package main

import (
	"fmt"
	"os"

	"github.com/fmitools/fmi-bd2cmake/model"
	"github.com/fmitools/fmi-bd2cmake/service/builddesc"
	"github.com/fmitools/fmi-bd2cmake/service/cmake"
	"github.com/fmitools/fmi-bd2cmake/service/flag"
	"github.com/fmitools/fmi-bd2cmake/service/orchestrator"
	"github.com/fmitools/fmi-bd2cmake/service/output"
	"github.com/fmitools/fmi-bd2cmake/service/reporter"
	"github.com/fmitools/fmi-bd2cmake/service/storage"
	"github.com/fmitools/fmi-bd2cmake/service/toolconfig"
	"github.com/fmitools/fmi-bd2cmake/utils/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		case "report":
			// Status report for this build of the tool itself.
			return reporter.NewService().Report(os.Stdout, reporter.DefaultConfig())
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	configService := toolconfig.NewService()
	toolCfg, err := configService.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	configService.Apply(toolCfg, &flags)

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	outputService := output.NewService(flags.Output, versionInfo)

	if flags.Output != "json" && !flags.Quiet && !flags.Version {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	orchestratorService := orchestrator.NewService(
		builddesc.NewService(),
		cmake.NewService(),
		reporter.NewService(),
		outputService,
		storageService,
		versionInfo,
	)
	return orchestratorService.Orchestrate(flags)
}
