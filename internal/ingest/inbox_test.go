package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/entity"
	"github.com/finops-tools/expense-recon/internal/pipeline"
)

type fakeProcessor struct {
	mu       sync.Mutex
	sessions int
	batches  map[uuid.UUID][]string
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{batches: make(map[uuid.UUID][]string)}
}

func (f *fakeProcessor) CreateSession(_ context.Context) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions++
	return &entity.Session{ID: uuid.New(), Status: constants.StatusUploading}, nil
}

func (f *fakeProcessor) ProcessBatch(_ context.Context, sessionID uuid.UUID, files []pipeline.UploadFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, file := range files {
		f.batches[sessionID] = append(f.batches[sessionID], file.Filename)
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestReadBatchDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-activity.pdf", "bbb")
	writeFile(t, dir, "a-receipts.pdf", "aaa")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, ".hidden.pdf", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	files, err := ReadBatchDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	// sorted by name for stable session ordering
	assert.Equal(t, "a-receipts.pdf", files[0].Filename)
	assert.Equal(t, "b-activity.pdf", files[1].Filename)
	assert.Equal(t, []byte("aaa"), files[0].Data)
	assert.Equal(t, int64(3), files[0].DeclaredSize)
}

func TestProcessDirRunsBatchOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "activity.pdf", "stub")

	proc := newFakeProcessor()
	in := NewInbox(proc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := in.ProcessDir(context.Background(), dir)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	// the same directory is never re-run as a second session
	second, err := in.ProcessDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, proc.sessions)
	assert.Equal(t, []string{"activity.pdf"}, proc.batches[first])
}

func TestProcessDirEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	proc := newFakeProcessor()
	in := NewInbox(proc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	id, err := in.ProcessDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.Zero(t, proc.sessions)
}
