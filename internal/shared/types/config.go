package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIURL         string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	TimeoutSeconds int      `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	Tab            string   `json:"tab" yaml:"tab" toml:"tab"`
}
