// Package enumgen renders Go source for enum types that plug into
// enumap: an integer type with iota constants in declaration order,
// the Index/FromIndex/Len triple wired to the declared length, and
// String plus text marshalling over the lower-cased value names.
//
// Generation is driven by a YAML config, usually .enumgen.yaml at the
// package root, with ENUMGEN_ environment variables layered on top.
package enumgen

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// Option is a function that configures a Generator
type Option func(*Generator)

// WithLogr sets the logger for the generator
var WithLogr = func(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// Generator renders one source file per configured enum.
type Generator struct {
	log logr.Logger
}

func New(opts ...Option) *Generator {
	g := &Generator{
		log: logr.Discard(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// File is one rendered source file, named after its enum.
type File struct {
	Name    string
	Content []byte
}

// fileName derives the output file name, fruit_enum.go for Fruit.
func fileName(name string) string {
	return strings.ToLower(name) + "_enum.go"
}

// Generate validates cfg and renders every enum it declares. Output is
// gofmt-formatted and ordered like the config.
func (g *Generator) Generate(cfg *Config) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(cfg.Enums))
	for _, e := range cfg.Enums {
		g.log.V(1).Info("rendering enum", "name", e.Name, "values", len(e.Values))
		content, err := render(cfg.Package, e)
		if err != nil {
			return nil, fmt.Errorf("rendering enum %s: %w", e.Name, err)
		}
		files = append(files, File{
			Name:    fileName(e.Name),
			Content: content,
		})
	}

	g.log.Info("rendered enums", "files", len(files))
	return files, nil
}
