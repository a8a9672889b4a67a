package banner

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fmitools/fmi-bd2cmake/shared/console"
	"github.com/fmitools/fmi-bd2cmake/utils/ansi"
)

type bannerColor int

const (
	bannerSlateBlue bannerColor = iota
	bannerTealGreen
	bannerAmberOrange
	bannerCrimsonRed
	bannerVioletPurple
	bannerSteelCyan
)

var bannerTitleColors = []string{
	"\x1b[38;2;10;102;194m",  // Slate Blue
	"\x1b[38;2;0;150;136m",   // Teal Green
	"\x1b[38;2;255;153;0m",   // Amber Orange
	"\x1b[38;2;229;9;20m",    // Crimson Red
	"\x1b[38;2;145;70;255m",  // Violet Purple
	"\x1b[38;2;0;175;240m",   // Steel Cyan
}

var bannerTitleColorNames = []string{
	"SlateBlue",
	"TealGreen",
	"AmberOrange",
	"CrimsonRed",
	"VioletPurple",
	"SteelCyan",
}

const (
	bannerTitleColorDefault        = bannerTealGreen
	bannerTitleColorBlueBackground = bannerAmberOrange
	bannerTitleColorEnv            = "FMI_BD2CMAKE_BANNER_COLOR"
)

var titleLines = []string{
	"██████╗  ██████╗  ██████╗   ██████╗ ███╗   ███╗  █████╗  ██╗  ██╗ ███████╗",
	"██╔══██╗ ██╔══██╗ ╚════██╗ ██╔════╝ ████╗ ████║ ██╔══██╗ ██║ ██╔╝ ██╔════╝",
	"██████╔╝ ██║  ██║  █████╔╝ ██║      ██╔████╔██║ ███████║ █████╔╝  █████╗  ",
	"██╔══██╗ ██║  ██║ ██╔═══╝  ██║      ██║╚██╔╝██║ ██╔══██║ ██╔═██╗  ██╔══╝  ",
	"██████╔╝ ██████╔╝ ███████╗ ╚██████╗ ██║ ╚═╝ ██║ ██║  ██║ ██║  ██╗ ███████╗",
	"╚═════╝  ╚═════╝  ╚══════╝  ╚═════╝ ╚═╝     ╚═╝ ╚═╝  ╚═╝ ╚═╝  ╚═╝ ╚══════╝",
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if width > len(line) {
			pad = (width - len(line)) / 2
		}

		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}

		fmt.Println(line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))

	if raw == "" {
		return 0, false
	}

	for idx := range bannerTitleColors {
		if strings.EqualFold(raw, bannerTitleColorNames[idx]) || raw == bannerTitleColors[idx] {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(bannerTitleColors[bannerTitleColor()])
	printCenteredLines(titleLines, width)
	fmt.Print("\x1b[0m")
}
