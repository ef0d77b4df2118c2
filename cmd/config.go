package cmd

// Config carries the environment-driven settings for the service.
//
// StorageBackend selects the repository implementation: "memory" (default)
// or "postgres". StatsSchedule is a six-field cron expression; when empty
// the stats job is not started.
type Config struct {
	HTTPPort       string
	StorageBackend string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	StatsSchedule  string
}
