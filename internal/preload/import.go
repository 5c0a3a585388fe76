package preload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"namekey/internal/config"
	"namekey/internal/contacts"
	"namekey/internal/logging"
)

const lockRetryDelay = 100 * time.Millisecond

var (
	// ErrLocked reports that another process holds the import lock.
	ErrLocked = errors.New("preload import already running")
	// ErrNoFile reports that no preload file was given or configured.
	ErrNoFile = errors.New("no preloaded contacts file")
)

// Summary describes one completed import.
type Summary struct {
	BatchID  string `json:"batch_id"`
	File     string `json:"file"`
	Contacts int    `json:"contacts"`
	DataRows int    `json:"data_rows"`
}

// Importer loads preload documents into a contacts store.
type Importer struct {
	cfg    *config.Config
	store  *contacts.Store
	logger *slog.Logger
}

// NewImporter returns an Importer writing to store.
func NewImporter(cfg *config.Config, store *contacts.Store, logger *slog.Logger) *Importer {
	return &Importer{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "preload"),
	}
}

// Import parses path, or the configured preload file when path is empty, and
// applies it as one batch.
func (i *Importer) Import(ctx context.Context, path string) (Summary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = i.cfg.Preload.File
	}
	if path == "" {
		return Summary{}, ErrNoFile
	}
	if err := i.cfg.EnsureDirectories(); err != nil {
		return Summary{}, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(i.cfg.PreloadLockPath())
	if err := i.acquire(ctx, lock); err != nil {
		return Summary{}, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			i.logger.Warn("failed to release preload lock", logging.Args(logging.Error(err))...)
		}
	}()

	summary := Summary{BatchID: uuid.NewString(), File: path}
	ctx = logging.WithCorrelationID(ctx, summary.BatchID)
	logger := logging.WithContext(ctx, i.logger)

	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open preload file: %w", err)
	}
	defer file.Close()

	ops, err := NewParser().Parse(file)
	if err != nil {
		return Summary{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := i.store.Apply(ctx, ops); err != nil {
		logging.ErrorWithContext(logger, "preload import failed", "preload_apply_failed",
			logging.String("file", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the preload document and re-run the import"),
		)
		return Summary{}, fmt.Errorf("apply preload batch: %w", err)
	}

	for _, op := range ops {
		switch op.Kind {
		case contacts.OpInsertRawContact:
			summary.Contacts++
		case contacts.OpInsertData:
			summary.DataRows++
		}
	}
	logger.Info("preloaded contacts imported", logging.Args(
		logging.String("file", path),
		logging.Int("contacts", summary.Contacts),
		logging.Int("data_rows", summary.DataRows),
	)...)
	return summary, nil
}

func (i *Importer) acquire(ctx context.Context, lock *flock.Flock) error {
	timeout := time.Duration(i.cfg.Preload.LockTimeoutSeconds) * time.Second
	var (
		ok  bool
		err error
	)
	if timeout <= 0 {
		ok, err = lock.TryLock()
	} else {
		lockCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		ok, err = lock.TryLockContext(lockCtx, lockRetryDelay)
		if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = nil
		}
	}
	if err != nil {
		return fmt.Errorf("acquire preload lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, i.cfg.PreloadLockPath())
	}
	return nil
}
