package configuration

type DiagnosticsConfig struct {
	Console ConsoleDiagnosticsConfig `json:"console"`
}

type ConsoleDiagnosticsConfig struct {
	Enabled bool `json:"enabled"`
	// Every prints only every n-th cycle
	Every int `json:"every"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}
