package modes

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fileproc/pkg/client"
	"fileproc/pkg/config"
	"fileproc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig
	cfg.Processor.ScratchDir = filepath.Join(dir, "scratch")
	cfg.Processor.Tools.Ghostscript = "fileproc-test-missing-gs"
	cfg.Audit.FilePath = filepath.Join(dir, "server.log")
	cfg.Audit.Console = false
	cfg.Metrics.Enabled = false
	cfg.Server.ShutdownTimeout = 5 * time.Second
	return cfg
}

func TestServe_SessionAndShutdown(t *testing.T) {
	cfg := testConfig(t)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- Serve(ctx, &cfg, lis) }()

	c, err := client.NewFileProcessorClient(client.Options{ServerAddr: lis.Addr().String()})
	require.NoError(t, err)
	defer c.Close()

	callCtx, callCancel := context.WithTimeout(ctx, 10*time.Second)
	defer callCancel()

	_, err = c.CompressPDF(callCtx, "doc.pdf", strings.NewReader("%PDF-1.4"), io.Discard)
	var perr *client.ProcessingError
	require.ErrorAs(t, err, &perr, "a missing converter is reported in the status frame")
	assert.Contains(t, perr.Message, "fileproc-test-missing-gs")

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	trail, err := os.ReadFile(cfg.Audit.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(trail), "ERROR - Service: CompressPDF, File: doc.pdf")

	entries, err := os.ReadDir(cfg.Processor.ScratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServe_RelativeScratchDirSweptOnce(t *testing.T) {
	cfg := testConfig(t)
	chdir(t, t.TempDir())
	cfg.Processor.ScratchDir = "scratch"
	cfg.Processor.SweepMaxAge = time.Hour

	require.NoError(t, os.Mkdir("scratch", 0700))
	stale := filepath.Join("scratch", "0b5c1f3e-8a52-4f0e-9a43-6c1de2b7a001_in_old.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0600))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	prev := logger.Global()
	defer logger.SetGlobal(prev)
	var buf bytes.Buffer
	logger.SetGlobal(logger.NewWithConfig(logger.Config{Level: logger.INFO, Output: &buf}))

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- Serve(ctx, &cfg, lis) }()

	c, err := client.NewFileProcessorClient(client.Options{ServerAddr: lis.Addr().String()})
	require.NoError(t, err)
	defer c.Close()

	callCtx, callCancel := context.WithTimeout(ctx, 10*time.Second)
	defer callCancel()

	_, err = c.CompressPDF(callCtx, "doc.pdf", strings.NewReader("%PDF-1.4"), io.Discard)
	var perr *client.ProcessingError
	require.ErrorAs(t, err, &perr)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.NoFileExists(t, stale)
	entries, err := os.ReadDir("scratch")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, strings.Count(buf.String(), "stale scratch files"))
}

func TestServe_BadScratchDir(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	cfg.Processor.ScratchDir = filepath.Join(blocker, "scratch")

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	err = Serve(context.Background(), &cfg, lis)
	require.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	prev := logger.Global()
	defer logger.SetGlobal(prev)

	path := filepath.Join(t.TempDir(), "fileproc.log")
	closer, err := SetupLogger(config.LoggingConfig{Level: "DEBUG", Format: "json", Output: path})
	require.NoError(t, err)
	defer closer()

	_, err = SetupLogger(config.LoggingConfig{Level: "LOUD", Output: "stdout"})
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
