package savegame

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/storage"
)

// ErrBadBackup is returned when a backup stream is not a farm backup
var ErrBadBackup = errors.New(ErrMsgBadBackup)

// BackupHeader is the first line of a backup stream
type BackupHeader struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Keys      int       `json:"keys"`
}

// Export writes every present key as a zstd-compressed stream:
// a JSON header line followed by one JSON object of key to raw value.
func Export(ctx context.Context, store storage.Store, w io.Writer) error {
	values := make(map[string]json.RawMessage, len(AllKeys))
	for _, key := range AllKeys {
		raw, ok, err := store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailed, ErrMsgReadKey, key, err)
		}
		if !ok {
			continue
		}
		if !json.Valid(raw) {
			// Bare text from older saves
			quoted, _ := json.Marshal(string(raw))
			raw = quoted
		}
		values[key] = json.RawMessage(raw)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBackupEncode, err)
	}

	bw := bufio.NewWriter(enc)
	header := BackupHeader{
		Format:    BackupFormat,
		Version:   BackupFormatVersion,
		CreatedAt: time.Now().UTC(),
		Keys:      len(values),
	}
	if err := writeJSONLine(bw, header); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%s: %w", ErrMsgBackupEncode, err)
	}
	if err := writeJSONLine(bw, values); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%s: %w", ErrMsgBackupEncode, err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%s: %w", ErrMsgBackupEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBackupEncode, err)
	}

	slog.Default().Info(LogMsgBackupExported, "keys", len(values))
	return nil
}

// Import replaces the store contents with a backup produced by Export.
// Unknown keys in the backup are ignored. The store is only cleared once the
// whole backup has been decoded.
func Import(ctx context.Context, store storage.Store, r io.Reader) (*BackupHeader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBackupDecode, err)
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReader(dec))

	var header BackupHeader
	if err := jd.Decode(&header); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadBackup, ErrMsgBackupDecode, err)
	}
	if header.Format != BackupFormat || header.Version > BackupFormatVersion {
		return nil, fmt.Errorf("%w: format %q version %d", ErrBadBackup, header.Format, header.Version)
	}

	var values map[string]json.RawMessage
	if err := jd.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadBackup, ErrMsgBackupDecode, err)
	}

	if err := store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailed, ErrMsgClearForImport, err)
	}
	for _, key := range AllKeys {
		raw, ok := values[key]
		if !ok {
			continue
		}
		if err := store.Set(ctx, key, raw); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailed, ErrMsgWriteKey, key, err)
		}
	}

	slog.Default().Info(LogMsgBackupImported, "keys", len(values), "created_at", header.CreatedAt)
	return &header, nil
}

func writeJSONLine(w *bufio.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
