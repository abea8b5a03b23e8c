package core

// ConfigStorage persists named plot configurations so house styles can be
// shared between runs and machines. Implementations live in the storage
// package.
type ConfigStorage interface {
	SaveConfig(name string, cfg *PlotConfig) error
	LoadConfig(name string) (*PlotConfig, error)
	ListConfigs() ([]string, error)
	DeleteConfig(name string) error
	Close() error
}
