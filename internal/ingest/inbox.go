package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/internal/entity"
	"github.com/finops-tools/expense-recon/internal/pipeline"
)

// BatchProcessor is the slice of the orchestrator the inbox needs.
type BatchProcessor interface {
	CreateSession(ctx context.Context) (*entity.Session, error)
	ProcessBatch(ctx context.Context, sessionID uuid.UUID, files []pipeline.UploadFile) error
}

// Inbox turns dropped directories into sessions: every immediate
// subdirectory of the watched root is one upload batch. A directory is
// processed at most once per daemon lifetime.
type Inbox struct {
	proc BatchProcessor
	log  *slog.Logger

	mu   sync.Mutex
	done map[string]uuid.UUID
}

func NewInbox(proc BatchProcessor, log *slog.Logger) *Inbox {
	if log == nil {
		log = slog.Default()
	}
	return &Inbox{proc: proc, log: log, done: make(map[string]uuid.UUID)}
}

// Run consumes watcher events for root until ctx is cancelled. File events
// are mapped to their batch directory; the watcher's debounce means a
// directory only surfaces once its file churn has settled.
func (in *Inbox) Run(ctx context.Context, root string, debounce time.Duration) error {
	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
		Debounce:    debounce,
	})
	if err != nil {
		return err
	}
	in.log.Info("inbox.started", "root", root, "debounce", debounce)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-errs:
			if ok && err != nil {
				in.log.Error("inbox.watch_error", "err", err)
			}
		case path, ok := <-events:
			if !ok {
				return nil
			}
			dir := filepath.Dir(path)
			if _, err := in.ProcessDir(ctx, dir); err != nil {
				in.log.Error("inbox.batch_failed", "dir", dir, "err", err)
			}
		}
	}
}

// ProcessDir reads every statement PDF in dir (non-recursive, sorted by
// name for stable ordering) and runs it as one session. Returns the
// session id, or uuid.Nil when the directory was already processed or
// holds no statement files.
func (in *Inbox) ProcessDir(ctx context.Context, dir string) (uuid.UUID, error) {
	in.mu.Lock()
	if id, seen := in.done[dir]; seen {
		in.mu.Unlock()
		return id, nil
	}
	// claim before reading so a concurrent event for the same batch
	// does not start a second session
	in.done[dir] = uuid.Nil
	in.mu.Unlock()

	files, err := ReadBatchDir(dir)
	if err != nil {
		in.forget(dir)
		return uuid.Nil, err
	}
	if len(files) == 0 {
		in.forget(dir)
		return uuid.Nil, nil
	}

	sess, err := in.proc.CreateSession(ctx)
	if err != nil {
		in.forget(dir)
		return uuid.Nil, err
	}
	in.mu.Lock()
	in.done[dir] = sess.ID
	in.mu.Unlock()

	in.log.Info("inbox.batch", "dir", dir, "session_id", sess.ID, "files", len(files))
	if err := in.proc.ProcessBatch(ctx, sess.ID, files); err != nil {
		// the session carries its own failure state; keep the directory
		// claimed so it is not retried in a loop
		return sess.ID, err
	}
	return sess.ID, nil
}

func (in *Inbox) forget(dir string) {
	in.mu.Lock()
	delete(in.done, dir)
	in.mu.Unlock()
}

// ReadBatchDir loads the statement PDFs directly inside dir into upload
// tuples, mirroring what the ingress layer hands the orchestrator.
func ReadBatchDir(dir string) ([]pipeline.UploadFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !allowed(e.Name(), defaultExts()) {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]pipeline.UploadFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, pipeline.UploadFile{
			Filename:     name,
			Data:         data,
			DeclaredSize: int64(len(data)),
		})
	}
	return files, nil
}
