// Package buildtable renders generation results as console tables.
package buildtable

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fmitools/fmi-bd2cmake/model"
)

// DrawRunTable renders the run summary and per-configuration results.
func DrawRunTable(input model.RenderRunInput) {
	fmt.Println("\n🧩 CMake Generation")
	fmt.Printf("   %s", text.FgCyan.Sprintf("input: %s", input.Input))
	if input.FMIVersion != "" {
		fmt.Printf("  %s", text.FgCyan.Sprintf("fmi: %s", input.FMIVersion))
	}
	if input.DryRun {
		fmt.Printf("  %s", text.FgYellow.Sprint("dry run: nothing written"))
	}
	fmt.Println()

	if len(input.Results) == 0 {
		fmt.Println("   no build configurations")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Model", "Platform", "C", "C++", "Sources", "Defines", "Includes", "Libs", "Bytes", "Output"})
	for _, r := range input.Results {
		t.AppendRow(table.Row{
			r.ModelIdentifier,
			orDash(r.Platform),
			orDash(r.CStandard),
			orDash(r.CXXStandard),
			r.SourceFiles,
			r.Definitions,
			r.IncludeDirs,
			r.Libraries,
			r.BytesWritten,
			orDash(r.OutputPath),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	for _, em := range input.Emulations {
		fmt.Printf("\n⚙️  %s status preview\n", em.ModelIdentifier)
		for _, line := range strings.Split(strings.TrimRight(em.Output, "\n"), "\n") {
			fmt.Printf("   %s\n", line)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
