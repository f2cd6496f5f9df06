package configs

// Moderation configures comment moderation. A SpamThreshold of 0 disables
// automatic spam flagging on reports.
type Moderation struct {
	SpamThreshold int64 `env:"SPAM_THRESHOLD" envDefault:"5"`
}
