package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/nova/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAppends() []Append {
	return []Append{
		{Index: 0, DelayMs: 1000, GapMs: 1001.5, OffsetMs: 1001.5},
		{Index: 1, DelayMs: 500, GapMs: 502.25, OffsetMs: 1503.75},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("replicas", 1, sampleAppends())
	require.NoError(t, err)
	assert.Contains(t, runID, "replicas_")

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "replicas", meta.Script)
	assert.Equal(t, 2, meta.Lines)
	assert.Equal(t, 1500.0, meta.ScheduledMs)
	assert.Equal(t, 1503.75, meta.ActualMs)

	appends, err := st.LoadAppends(runID)
	require.NoError(t, err)
	assert.Equal(t, sampleAppends(), appends)
}

func TestStoreSave_Empty(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("node", 1, nil)
	require.NoError(t, err)

	appends, err := st.LoadAppends(runID)
	require.NoError(t, err)
	assert.Empty(t, appends)
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := st.Save("replicas", 1, sampleAppends())
	require.NoError(t, err)
	second, err := st.Save("python", 0.5, sampleAppends())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Stray entries are skipped.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "junk"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0644))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("missing")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())
	runID, err := st.Save("serve", 2, sampleAppends())
	require.NoError(t, err)

	exp, err := st.Export(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, exp.ID)
	assert.Equal(t, 2.0, exp.Speed)
	assert.Len(t, exp.Appends, 2)
}

func TestRecorder(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRecorder(start)

	r.Observe(0, transcript.Line{Delay: time.Second}, start.Add(1010*time.Millisecond))
	r.Observe(1, transcript.Line{Delay: 500 * time.Millisecond}, start.Add(1520*time.Millisecond))

	got := r.Appends()
	require.Len(t, got, 2)
	assert.Equal(t, Append{Index: 0, DelayMs: 1000, GapMs: 1010, OffsetMs: 1010}, got[0])
	assert.Equal(t, Append{Index: 1, DelayMs: 500, GapMs: 510, OffsetMs: 1520}, got[1])
}

func TestStoreSave_ContainsRunDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	st := New(dir)
	require.NoError(t, st.Init())

	for _, name := range []string{"../x", "../../escaped", "a/b", `..\\win`, "..", ""} {
		runID, err := st.Save(name, 1, sampleAppends())
		require.NoError(t, err, name)

		runDir := filepath.Join(dir, runID)
		assert.Equal(t, dir, filepath.Dir(runDir), "%q escaped the data directory", name)
		_, err = os.Stat(filepath.Join(runDir, metadataFile))
		assert.NoError(t, err, name)

		meta, err := st.Load(runID)
		require.NoError(t, err, name)
		assert.Equal(t, name, meta.Script)
	}

	runs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 6)
}

func TestRunName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"replicas", "replicas"},
		{"../x", "x"},
		{"a/b", "a-b"},
		{"..", "script"},
		{"", "script"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runName(tt.in), tt.in)
	}
}
