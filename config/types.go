package config

// Match modes for PruneConfig.MatchMode
const (
	// MatchAgencyID compares a route's agency_id with the banned list as is.
	MatchAgencyID = "agency_id"
	// MatchAgencyName resolves banned agency names to ids through agency.txt first.
	MatchAgencyName = "agency_name"
)

// PruneConfig controls which agencies are removed and how.
type PruneConfig struct {
	BannedAgencies []string `yaml:"bannedAgencies" validate:"required,min=1,dive,required"`
	MatchMode      string   `yaml:"matchMode" validate:"oneof=agency_id agency_name"`
	RewriteRoutes  bool     `yaml:"rewriteRoutes"`
}

// TablesConfig holds the file names of the tables inside the feed directory
type TablesConfig struct {
	Agency    string `yaml:"agency" validate:"required"`
	Routes    string `yaml:"routes" validate:"required"`
	Trips     string `yaml:"trips" validate:"required"`
	StopTimes string `yaml:"stopTimes" validate:"required"`
}

// RealtimeConfig lists GTFS-Realtime protobuf files, relative to the feed
// directory, that are pruned after the static tables.
type RealtimeConfig struct {
	Feeds []string `yaml:"feeds" validate:"omitempty,dive,required"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Prune    PruneConfig    `yaml:"prune"`
	Tables   TablesConfig   `yaml:"tables"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Logging  LoggingConfig  `yaml:"logging"`
}
