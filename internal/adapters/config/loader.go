// Package config loads sheet scripts from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ScriptLoader = (*Loader)(nil)

// Loader implements ports.ScriptLoader for YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes and validates the script at path.
func (l *Loader) Load(path string) (*domain.Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read script"), "path", path)
	}

	script, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	script.Path = path
	script.Digest = fmt.Sprintf("%016x", xxhash.Sum64(data))
	if script.Name == "" {
		base := filepath.Base(path)
		script.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return script, nil
}

// Parse decodes and validates script source. Unknown keys are rejected.
func Parse(data []byte) (*domain.Script, error) {
	var file ScriptFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrInvalidScript, "script is empty")
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidScript, "failed to parse script"), "reason", err.Error())
	}

	mode, ok := domain.ParsePrintMode(file.Print)
	if !ok {
		err := zerr.Wrap(domain.ErrInvalidScript, "unknown print mode")
		return nil, zerr.With(err, "print", file.Print)
	}

	steps := make([]domain.Step, 0, len(file.Steps))
	for i, dto := range file.Steps {
		step, err := dto.toDomain()
		if err != nil {
			return nil, zerr.With(err, "step", i+1)
		}
		steps = append(steps, step)
	}

	return &domain.Script{
		Name:  file.Name,
		Steps: steps,
		Print: mode,
	}, nil
}

func (s StepDTO) toDomain() (domain.Step, error) {
	pos := domain.ParsePosition(s.Cell)
	if pos == domain.PositionNone {
		err := zerr.Wrap(domain.ErrInvalidScript, "invalid cell label")
		return domain.Step{}, zerr.With(err, "cell", s.Cell)
	}

	switch {
	case s.Set != nil && s.Clear:
		return domain.Step{}, zerr.With(zerr.Wrap(domain.ErrInvalidScript, "step sets and clears at once"), "cell", s.Cell)
	case s.Set == nil && !s.Clear:
		return domain.Step{}, zerr.With(zerr.Wrap(domain.ErrInvalidScript, "step neither sets nor clears"), "cell", s.Cell)
	case s.Clear:
		return domain.Step{Cell: pos, Clear: true}, nil
	default:
		return domain.Step{Cell: pos, Text: *s.Set}, nil
	}
}
