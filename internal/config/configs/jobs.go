package configs

// Jobs configures background jobs.
type Jobs struct {
	StatusSyncEnabled bool `env:"STATUS_SYNC_ENABLED" envDefault:"true"`
	// StatusSyncSpec is a six field cron expression (with seconds).
	StatusSyncSpec string `env:"STATUS_SYNC_SPEC" envDefault:"0 */5 * * * *"`
}
