// Package content loads optional section overrides from a YAML file and
// keeps them current while the server runs.
package content

import (
	"fmt"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vpawar/folio/internal/portfolio"
	"github.com/vpawar/folio/internal/views"
)

// Store holds the section overrides currently being served
type Store struct {
	path     string
	v        *viper.Viper
	logger   *zap.Logger
	sections atomic.Pointer[views.Sections]
}

// NewStore loads path. An empty path serves the built-in content.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}
	if path == "" {
		s.sections.Store(&views.Sections{})
		return s, nil
	}

	s.v = viper.New()
	s.v.SetConfigFile(path)
	sections, err := s.read()
	if err != nil {
		return nil, err
	}
	s.sections.Store(sections)
	return s, nil
}

// Sections returns the current overrides
func (s *Store) Sections() views.Sections {
	return *s.sections.Load()
}

// Watch reloads the file whenever it changes. A file that fails to parse
// leaves the previous content in place.
func (s *Store) Watch() {
	if s.v == nil {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		sections, err := s.read()
		if err != nil {
			s.logger.Warn("keeping previous content", zap.String("file", e.Name), zap.Error(err))
			return
		}
		s.sections.Store(sections)
		s.logger.Info("content reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	s.v.WatchConfig()
}

func (s *Store) read() (*views.Sections, error) {
	if err := s.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", s.path, err)
	}

	var sections views.Sections
	if err := s.v.Unmarshal(&sections); err != nil {
		return nil, fmt.Errorf("unmarshalling content file %s: %w", s.path, err)
	}

	for _, dup := range portfolio.DuplicateKeys(sections.Projects.Projects, sections.Skills.Tools, sections.Skills.SkillCategories) {
		s.logger.Warn("duplicate key in content file", zap.String("file", s.path), zap.String("key", dup))
	}
	return &sections, nil
}
