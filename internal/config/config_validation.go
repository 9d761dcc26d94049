package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendPostgres:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Backend == BackendPostgres && cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Backend == BackendFile && cfg.Storage.Files.ItemsFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.PhotoDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepInterval > 0 && cfg.Workers.SweepMinAge < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
