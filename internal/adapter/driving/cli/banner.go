package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/mersoabreu/fincontrol/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
         /$$$$$$$$ /$$            /$$$$$$                        /$$                         /$$
        | $$_____/|__/           /$$__  $$                      | $$                        | $$
        | $$       /$$ /$$$$$$$ | $$  \__/  /$$$$$$  /$$$$$$$  /$$$$$$    /$$$$$$   /$$$$$$ | $$
        | $$$$$   | $$| $$__  $$| $$       /$$__  $$| $$__  $$|_  $$_/   /$$__  $$ /$$__  $$| $$
        | $$__/   | $$| $$  \ $$| $$      | $$  \ $$| $$  \ $$  | $$    | $$  \__/| $$  \ $$| $$
        | $$      | $$| $$  | $$| $$    $$| $$  | $$| $$  | $$  | $$ /$$| $$      | $$  | $$| $$
        | $$      | $$| $$  | $$|  $$$$$$/|  $$$$$$/| $$  | $$  |  $$$$/| $$      |  $$$$$$/| $$
        |__/      |__/|__/  |__/ \______/  \______/ |__/  |__/   \___/  |__/       \______/ |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("FinControl CLI (v%s)", formattedVersion)))
}
