package types

// CLIArgs represents the command-line arguments shared by the dashboard and
// transaction commands.
type CLIArgs struct {
	ConfigFile  string
	Tab         string
	Month       int
	Year        int
	ReportName  string
	ReportType  []string
	Dir         string
	Interactive bool
}
