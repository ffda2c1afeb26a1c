package scratch

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"fileproc/pkg/logger"
	"fileproc/pkg/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, p platform.Platform) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), p, logger.New())
	require.NoError(t, err)
	return s
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\scan 01.png`, "scan_01.png"},
		{".hidden", "hidden"},
		{"...", "file"},
		{"", "file"},
		{"a b;c&d|e$(f).jpg", "a_b_c_d_e__f_.jpg"},
		{"dir/", "file"},
		{"über.pdf", "_ber.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_CapsLengthKeepingExtension(t *testing.T) {
	got := Sanitize(strings.Repeat("a", 300) + ".pdf")
	assert.Len(t, got, maxNameLength)
	assert.True(t, strings.HasSuffix(got, ".pdf"))
}

func TestAllocate_CreatesPrivateFile(t *testing.T) {
	s := newTestStore(t, platform.NewPlatform())

	alloc, err := s.Allocate("", "../a report.pdf")
	require.NoError(t, err)
	defer alloc.File.Close()

	assert.Equal(t, s.Dir(), filepath.Dir(alloc.Path))
	assert.Equal(t, alloc.ID+"_in_a_report.pdf", filepath.Base(alloc.Path))

	info, err := os.Stat(alloc.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.Zero(t, info.Size())
}

func TestAllocate_RefusesExistingPath(t *testing.T) {
	s := newTestStore(t, platform.NewPlatform())

	first, err := s.Allocate("fixed-id", "a.pdf")
	require.NoError(t, err)
	defer first.File.Close()

	_, err = s.Allocate("fixed-id", "a.pdf")
	assert.Error(t, err)
}

func TestAllocate_ConcurrentSameNameNeverCollides(t *testing.T) {
	s := newTestStore(t, platform.NewPlatform())

	const n = 50
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		paths = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alloc, err := s.Allocate("", "same.pdf")
			if !assert.NoError(t, err) {
				return
			}
			alloc.File.Close()

			mu.Lock()
			paths[alloc.Path] = struct{}{}
			paths[s.DeriveOutputPath(alloc.Path, KeepName)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, paths, 2*n)
}

func TestDeriveOutputPath(t *testing.T) {
	s := newTestStore(t, platform.NewPlatform())
	in := filepath.Join(s.Dir(), "1234_in_photo_in_.jpg")

	assert.Equal(t, filepath.Join(s.Dir(), "1234_out_photo_in_.jpg"), s.DeriveOutputPath(in, KeepName))
	assert.Equal(t, filepath.Join(s.Dir(), "1234_out_photo_in_.jpg.txt"), s.DeriveOutputPath(in, TextSuffix))
	assert.Equal(t, filepath.Join(s.Dir(), "1234_out_photo_in_.jpg.webp"), s.DeriveOutputPath(in, FormatSuffix("webp")))
}

func TestRelease_IgnoresMissingAndSwallowsErrors(t *testing.T) {
	mp := platform.NewMockPlatform()
	s := newTestStore(t, mp)

	alloc, err := s.Allocate("", "a.pdf")
	require.NoError(t, err)
	alloc.File.Close()
	missing := s.DeriveOutputPath(alloc.Path, KeepName)

	s.Release(alloc.Path, missing, "")
	assert.NoFileExists(t, alloc.Path)
	assert.Equal(t, []string{alloc.Path, missing}, mp.Removes())

	other, err := s.Allocate("", "b.pdf")
	require.NoError(t, err)
	other.File.Close()

	mp.ShouldFailRemove = true
	assert.NotPanics(t, func() { s.Release(other.Path) })
	assert.FileExists(t, other.Path)
}

func TestSweep_RemovesOnlyStaleOwnedFiles(t *testing.T) {
	s := newTestStore(t, platform.NewPlatform())

	stale, err := s.Allocate("", "old.pdf")
	require.NoError(t, err)
	stale.File.Close()
	staleOut := s.DeriveOutputPath(stale.Path, TextSuffix)
	require.NoError(t, os.WriteFile(staleOut, []byte("x"), 0o600))

	fresh, err := s.Allocate("", "new.pdf")
	require.NoError(t, err)
	fresh.File.Close()

	foreign := filepath.Join(s.Dir(), "not-ours.pdf")
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0o600))

	old := time.Now().Add(-2 * time.Hour)
	for _, p := range []string{stale.Path, staleOut, foreign} {
		require.NoError(t, os.Chtimes(p, old, old))
	}

	removed, err := s.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoFileExists(t, stale.Path)
	assert.NoFileExists(t, staleOut)
	assert.FileExists(t, fresh.Path)
	assert.FileExists(t, foreign)
}

func TestNewStore_RequiresDir(t *testing.T) {
	_, err := NewStore("", platform.NewPlatform(), logger.New())
	assert.Error(t, err)
}

func TestNewStore_ResolvesRelativeDir(t *testing.T) {
	chdir(t, t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	s, err := NewStore("scratch", platform.NewPlatform(), logger.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "scratch"), s.Dir())

	alloc, err := s.Allocate("", "a.pdf")
	require.NoError(t, err)
	require.NoError(t, alloc.File.Close())
	assert.True(t, filepath.IsAbs(alloc.Path))
	assert.True(t, filepath.IsAbs(s.DeriveOutputPath(alloc.Path, TextSuffix)))

	// Converters run with the scratch dir as their working directory.
	chdir(t, s.Dir())
	_, err = os.Stat(alloc.Path)
	assert.NoError(t, err)
}

func TestSweep_LogsOnce(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewStore(t.TempDir(), platform.NewPlatform(), logger.NewWithConfig(logger.Config{Level: logger.INFO, Output: &buf}))
	require.NoError(t, err)

	alloc, err := s.Allocate("", "old.pdf")
	require.NoError(t, err)
	require.NoError(t, alloc.File.Close())
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(alloc.Path, old, old))

	removed, err := s.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, strings.Count(buf.String(), "stale scratch files"))

	buf.Reset()
	removed, err = s.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, buf.String())
}

func TestOpen_ReadsBackAndReportsMissing(t *testing.T) {
	store := newTestStore(t, platform.NewPlatform())

	alloc, err := store.Allocate("", "a.pdf")
	require.NoError(t, err)
	_, err = alloc.File.WriteString("payload")
	require.NoError(t, err)
	require.NoError(t, alloc.File.Close())

	f, err := store.Open(alloc.Path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = store.Open(store.DeriveOutputPath(alloc.Path, KeepName))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
