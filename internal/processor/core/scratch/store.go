package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"fileproc/pkg/logger"
	"fileproc/pkg/platform"

	"github.com/google/uuid"
)

const (
	maxNameLength = 100
	fileMode      = 0o600
	dirMode       = 0o700

	inputMarker  = "_in_"
	outputMarker = "_out_"
)

// Suffix is appended to the input name to form the output name.
type Suffix string

const (
	KeepName   Suffix = ""
	TextSuffix Suffix = ".txt"
)

// FormatSuffix returns the suffix for an image conversion target.
func FormatSuffix(format string) Suffix {
	return Suffix("." + format)
}

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	ownedName   = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}_(in|out)_`)
)

// Allocation is a freshly created, empty input file. The caller owns File
// and must close it.
type Allocation struct {
	ID   string
	Path string
	File *os.File
}

// Store hands out per-session scratch paths under one directory.
type Store struct {
	dir      string
	platform platform.Platform
	logger   *logger.Logger
}

// NewStore makes sure dir exists and returns a store rooted there. A relative
// dir is resolved against the working directory so every path the store hands
// out is absolute and stays valid for converters started elsewhere.
func NewStore(dir string, p platform.Platform, log *logger.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("scratch directory is required")
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scratch directory: %w", err)
	}
	if err := p.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %s: %w", dir, err)
	}
	return &Store{
		dir:      dir,
		platform: p,
		logger:   log.WithField("component", "scratch-store"),
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Allocate exclusively creates <id>_in_<sanitized name>. An empty id gets a
// fresh uuid.
func (s *Store) Allocate(id, baseName string) (*Allocation, error) {
	if id == "" {
		id = uuid.NewString()
	}

	name := Sanitize(baseName)
	path := filepath.Join(s.dir, id+inputMarker+name)

	f, err := s.platform.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate scratch file %s: %w", path, err)
	}

	s.logger.Debug("scratch file allocated", "sessionId", id, "path", path)
	return &Allocation{ID: id, Path: path, File: f}, nil
}

// DeriveOutputPath maps an input path to the path the converter writes to.
func (s *Store) DeriveOutputPath(inputPath string, suffix Suffix) string {
	dir, base := filepath.Split(inputPath)
	return filepath.Join(dir, strings.Replace(base, inputMarker, outputMarker, 1)+string(suffix))
}

// Open opens a converter output for reading.
func (s *Store) Open(path string) (*os.File, error) {
	f, err := s.platform.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scratch file %s: %w", path, err)
	}
	return f, nil
}

// Release removes every given path. Missing files are fine; other failures
// are logged and otherwise ignored.
func (s *Store) Release(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := s.platform.Remove(path); err != nil {
			if s.platform.IsNotExist(err) {
				continue
			}
			s.logger.Warn("failed to remove scratch file", "path", path, "error", err)
			continue
		}
		s.logger.Debug("scratch file removed", "path", path)
	}
}

// Sweep removes scratch files older than maxAge, such as those left behind
// by a crash. Only names this store generates are touched.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := s.platform.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read scratch directory %s: %w", s.dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !ownedName.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := s.platform.Remove(path); err != nil && !s.platform.IsNotExist(err) {
			s.logger.Warn("failed to sweep scratch file", "path", path, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("swept stale scratch files", "removed", removed, "maxAge", maxAge)
	}
	return removed, nil
}

// Sanitize reduces a client-declared file name to a safe single path
// component: directories are dropped, characters outside [A-Za-z0-9._-]
// become '_', leading dots are removed and the result is capped in length
// with the extension preserved.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")

	if len(name) > maxNameLength {
		ext := filepath.Ext(name)
		if len(ext) > 16 {
			ext = ""
		}
		name = name[:maxNameLength-len(ext)] + ext
	}

	if name == "" {
		return "file"
	}
	return name
}
