package postgres

// KV queries
const (
	QueryGetValue    = `SELECT value::text FROM farm_kv WHERE key = $1`
	QueryUpsertValue = `INSERT INTO farm_kv (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	QueryDeleteValue = `DELETE FROM farm_kv WHERE key = $1`
	QueryClearValues = `DELETE FROM farm_kv`
)

// Error Messages - KV Operations
const (
	ErrMsgFailedToGetKey    = "failed to get key"
	ErrMsgFailedToSetKey    = "failed to set key"
	ErrMsgFailedToDeleteKey = "failed to delete key"
	ErrMsgFailedToClear     = "failed to clear keys"
)
