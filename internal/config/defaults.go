package config

const (
	defaultDataDir     = "~/.local/share/splice"
	defaultLogDir      = "~/.local/share/splice/logs"
	defaultDBFilename  = "splice.db"
	defaultLockDirName = "locks"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			Filename:    defaultDBFilename,
			LockDirName: defaultLockDirName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
