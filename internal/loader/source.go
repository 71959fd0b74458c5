package loader

//go:generate mockgen -destination=mock/mock_source.go -package=loadermock github.com/KirkDiggler/talent-api/internal/loader Source

import (
	"context"
	"os"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Source supplies tree definitions
type Source interface {
	// Load returns every tree definition the source holds
	Load(ctx context.Context) (map[string]entities.TreeDefinition, error)
}

// FileSource reads a JSON or YAML document from disk
type FileSource struct {
	path string
}

// NewFileSource creates a source for the document at path
func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, errors.InvalidArgument("trees path is required")
	}
	return &FileSource{path: path}, nil
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) (map[string]entities.TreeDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("tree document %s not found", s.path).WithMeta("path", s.path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", s.path)
	}

	defs, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.path)
	}
	return defs, nil
}

var _ Source = (*FileSource)(nil)
