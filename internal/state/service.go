// Package state owns the loaded graph: which engine is live, which file it
// came from, and whether that file has changed since. All tool and HTTP
// handlers reach the engine through a Service so reads and writes see a
// consistent graph and writes land on disk before the caller returns.
package state

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// EnvDefaultPath names the graph file AutoLoad opens at startup.
const EnvDefaultPath = "GRAPH_DEFAULT_PATH"

// Options configures a Service.
type Options struct {
	// Backend is the engine factory name used for fresh engines. Empty
	// falls back to GRAPH_BACKEND, then memory.
	Backend string
	// EnginePath is passed to file-backed engine constructors.
	EnginePath string
	// Strict rejects unknown entity fields during import.
	Strict bool
	// Logger receives reload and persistence events. Nil means no logging.
	Logger *zap.Logger
}

// Service guards the live engine with a single-writer, multi-reader lock.
// Read tools hold the read lock for their whole serialisation pass; write
// tools hold the write lock across validate, mutate, and persist; the
// change-detection reload swaps engines under the write lock.
type Service struct {
	opts   Options
	logger *zap.Logger

	mu          sync.RWMutex
	engine      graph.Engine
	loadedPath  string
	loadedMtime time.Time
}

// NewService builds an empty Service. No graph is loaded until Load,
// Adopt, or AutoLoad succeeds.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{opts: opts, logger: logger}
}

func (s *Service) newEngine() (graph.Engine, error) {
	return graph.New(s.opts.Backend, graph.Options{
		Path:   s.opts.EnginePath,
		Strict: s.opts.Strict,
		Logger: s.logger,
	})
}

// Load imports the canonical JSON file at path into a fresh engine and
// makes it the live graph. The previous graph, if any, is discarded only
// after the import succeeds.
func (s *Service) Load(path string) (export.Counts, error) {
	eng, err := s.newEngine()
	if err != nil {
		return export.Counts{}, err
	}
	counts, err := export.ImportFile(eng, path, s.opts.Strict)
	if err != nil {
		return export.Counts{}, err
	}

	var mtime time.Time
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}

	s.mu.Lock()
	s.engine = eng
	s.loadedPath = path
	s.loadedMtime = mtime
	s.mu.Unlock()

	s.logger.Info("graph loaded",
		zap.String("path", path),
		zap.Int("entities", counts.Entities),
		zap.Int("relationships", counts.Relationships))
	return counts, nil
}

// Adopt installs an engine built elsewhere, typically by the synthetic
// pipeline, as the live graph. An empty path means the graph has no
// backing file: no change detection runs and writes are not persisted.
func (s *Service) Adopt(eng graph.Engine, path string) {
	var mtime time.Time
	if path != "" {
		if info, err := os.Stat(path); err == nil {
			mtime = info.ModTime()
		}
	}
	s.mu.Lock()
	s.engine = eng
	s.loadedPath = path
	s.loadedMtime = mtime
	s.mu.Unlock()
}

// AutoLoad loads the file named by GRAPH_DEFAULT_PATH. An unset variable
// or a missing file leaves the service with no graph and returns nil; a
// file that exists but fails to import is an error.
func (s *Service) AutoLoad() error {
	path := os.Getenv(EnvDefaultPath)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.logger.Debug("default graph file does not exist, starting empty",
			zap.String("path", path))
		return nil
	}
	_, err := s.Load(path)
	return err
}

// Read runs fn with the live engine under the shared lock, first picking
// up any external change to the backing file.
func (s *Service) Read(fn func(graph.Engine) error) error {
	if err := s.require(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.engine == nil {
		return model.ErrNoGraph
	}
	return fn(s.engine)
}

// Write runs fn with the live engine under the exclusive lock and, when fn
// succeeds, persists the graph to its backing file before returning.
func (s *Service) Write(fn func(graph.Engine) error) error {
	if err := s.require(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return model.ErrNoGraph
	}
	if err := fn(s.engine); err != nil {
		return err
	}
	return s.persistLocked()
}

// require is the freshness gate in front of every Read and Write: no
// graph is an error; a failed stat keeps the current graph with a
// warning; a changed mtime triggers a synchronous re-import into a fresh
// engine, swapped in only if the whole file parses.
func (s *Service) require() error {
	s.mu.RLock()
	eng, path, mtime := s.engine, s.loadedPath, s.loadedMtime
	s.mu.RUnlock()

	if eng == nil {
		return model.ErrNoGraph
	}
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn("stat of loaded graph file failed, keeping current graph",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	if info.ModTime().Equal(mtime) {
		return nil
	}

	fresh, err := s.newEngine()
	if err != nil {
		s.logger.Warn("reload engine construction failed, keeping current graph",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	counts, err := export.ImportFile(fresh, path, s.opts.Strict)
	if err != nil {
		s.logger.Warn("reload of changed graph file failed, keeping current graph",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	s.mu.Lock()
	s.engine = fresh
	s.loadedMtime = info.ModTime()
	s.mu.Unlock()

	s.logger.Info("graph reloaded after external change",
		zap.String("path", path),
		zap.Int("entities", counts.Entities),
		zap.Int("relationships", counts.Relationships))
	return nil
}

// Persist writes the live graph to its backing file under the exclusive
// lock. A service with no backing file persists nothing.
func (s *Service) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return model.ErrNoGraph
	}
	return s.persistLocked()
}

// persistLocked writes canonical JSON to a temporary sibling, fsyncs,
// renames over the backing file, then records the post-rename mtime.
// Updating the mtime after the rename keeps the next require from
// mistaking our own write for an external change.
func (s *Service) persistLocked() error {
	if s.loadedPath == "" {
		s.logger.Debug("graph has no backing file, skipping persist")
		return nil
	}

	data, err := export.Marshal(s.engine)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.loadedPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.loadedPath)+".tmp-*")
	if err != nil {
		return model.Persistencef("create temporary graph file: %v", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return model.Persistencef("write temporary graph file: %v", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return model.Persistencef("sync temporary graph file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return model.Persistencef("close temporary graph file: %v", err)
	}
	if err := os.Rename(tmpName, s.loadedPath); err != nil {
		os.Remove(tmpName)
		return model.Persistencef("replace graph file: %v", err)
	}

	if info, err := os.Stat(s.loadedPath); err == nil {
		s.loadedMtime = info.ModTime()
	} else {
		s.logger.Warn("stat after persist failed, next read will reload",
			zap.String("path", s.loadedPath), zap.Error(err))
	}

	s.logger.Debug("graph persisted", zap.String("path", s.loadedPath))
	return nil
}

// LoadedPath reports the backing file of the live graph, or "" when no
// graph is loaded or the graph has no backing file.
func (s *Service) LoadedPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedPath
}

// Loaded reports whether a graph is live.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine != nil
}
