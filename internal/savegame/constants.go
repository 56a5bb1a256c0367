package savegame

// Legacy coercion limits
const (
	// MaxLegacyUnits caps how many units a legacy count expands to
	MaxLegacyUnits = 100000
)

// Backup format
const (
	BackupFormat        = "tinyfarm-backup"
	BackupFormatVersion = 1
)

// Log messages
const (
	LogMsgKeyFallback      = "Saved value unreadable, using default"
	LogMsgMigrationApplied = "Save migration applied"
	LogMsgStateLoaded      = "Farm state loaded"
	LogMsgBackupExported   = "Farm backup exported"
	LogMsgBackupImported   = "Farm backup imported"
)

// Error messages
const (
	ErrMsgReadKey        = "failed to read key"
	ErrMsgIntOutOfRange  = "number out of range"
	ErrMsgWriteKey       = "failed to write key"
	ErrMsgEncodeKey      = "failed to encode key"
	ErrMsgBadBackup      = "invalid backup"
	ErrMsgBackupEncode   = "failed to encode backup"
	ErrMsgBackupDecode   = "failed to decode backup"
	ErrMsgClearForImport = "failed to clear store before import"
)
