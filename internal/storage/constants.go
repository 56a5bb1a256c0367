package storage

// Backend names accepted by STORAGE_BACKEND
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Backends lists every supported backend name
var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres}

// Key rules
const (
	KeyPattern = `^[a-z0-9_]{1,128}$`
)

// File backend
const (
	FileExtension       = ".json"
	TempFilePattern     = ".tmp-*"
	DataDirPermissions  = 0o755
	DataFilePermissions = 0o644
)

// SQLite backend
const (
	SQLiteDriverName = "sqlite"
	SQLiteTableName  = "kv"
)

// Error messages
const (
	ErrMsgInvalidKey     = "invalid storage key"
	ErrMsgClosed         = "storage is closed"
	ErrMsgUnknownBackend = "unknown storage backend"
	ErrMsgOpenSQLite     = "failed to open sqlite database"
	ErrMsgInitSQLite     = "failed to initialize sqlite schema"
	ErrMsgCreateDataDir  = "failed to create data directory"
)

// Log messages
const (
	LogMsgStoreOpened = "Key-value store opened"
)
