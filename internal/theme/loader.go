package theme

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/econviz/internal/logger"
	vizerrors "github.com/alexisbeaulieu97/econviz/pkg/errors"
)

// ErrNoThemes is returned when the theme directory is missing or holds no
// theme documents.
var ErrNoThemes = errors.New("no themes found")

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Loader reads theme documents from disk.
type Loader struct {
	logger *logger.Logger
}

// NewLoader returns a Loader that reports progress to log. log may be nil.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log.Component("theme")}
}

// LoadDir parses every *.yaml and *.yml file directly inside dir. Any
// malformed document fails the whole load.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s does not exist", ErrNoThemes, dir)
		}
		return nil, fmt.Errorf("read theme directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: directory %s has no .yaml files", ErrNoThemes, dir)
	}

	themes := make([]Theme, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("theme load cancelled: %w", err)
		}

		t, err := LoadFile(path)
		if err != nil {
			l.logger.Error(err, "theme rejected", "path", path)
			return nil, err
		}
		l.logger.Debug("theme loaded", "name", t.Name, "template", t.Template, "colors", len(t.Palette))
		themes = append(themes, t)
	}

	set := NewSet(themes...)
	l.logger.Info("themes loaded", "dir", dir, "count", set.Len())
	return set, nil
}

// LoadFile parses and validates a single theme document. The theme is named
// after the file stem.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, vizerrors.NewParseError(path, 0, err)
	}

	t, err := Parse(data)
	if err != nil {
		var valErr *vizerrors.ValidationError
		if errors.As(err, &valErr) {
			valErr.Field = stem(path) + "." + valErr.Field
			return Theme{}, valErr
		}
		return Theme{}, vizerrors.NewParseError(path, extractLine(err), err)
	}
	t.Name = stem(path)
	return t, nil
}

// Parse decodes a theme document. Unknown keys are rejected. The returned
// theme has no name.
func Parse(data []byte) (Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Theme{}, errors.New("empty theme document")
		}
		return Theme{}, err
	}

	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
