// Package render turns Specifications into test source text for a target
// framework. Each framework has one Renderer; the Registry owns the mapping
// from framework name to renderer. Rendering is pure: no I/O, no shared
// state beyond the registry, which is populated once at construction.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stubforge/stubforge/pkg/spec"
)

// Renderer converts one Specification to test source text.
type Renderer interface {
	// Name returns the framework identifier used for registry lookup
	// (e.g., "pytest", "jest").
	Name() string

	// Language returns the target language of the generated file.
	Language() string

	// FileExtension returns the test file extension (e.g., ".py", ".test.js").
	FileExtension() string

	// Render produces the complete test file text for a spec.
	Render(s spec.Spec) (string, error)
}

// UnsupportedFrameworkError reports a framework with no registered renderer.
type UnsupportedFrameworkError struct {
	Framework  string
	Registered []string
}

func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("unsupported framework %q (registered: %s)",
		e.Framework, strings.Join(e.Registered, ", "))
}

// TemplateMismatchError reports a spec whose shape does not match what the
// resolved renderer requires. Rendering never silently emits an empty
// section instead.
type TemplateMismatchError struct {
	Field   string
	Message string
}

func (e *TemplateMismatchError) Error() string {
	return fmt.Sprintf("template mismatch: %s: %s", e.Field, e.Message)
}

// Registry holds all available renderers. It is constructed once at startup
// with the built-in set and treated as read-only afterwards.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry with all built-in renderers registered.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}

	r.Register(&PytestRenderer{})
	r.Register(&UnittestRenderer{})
	r.Register(&JestRenderer{})
	r.Register(&MochaRenderer{})
	r.Register(&JUnitRenderer{})

	return r
}

// Register adds a renderer, overwriting any previous registration under the
// same name.
func (r *Registry) Register(rr Renderer) {
	r.renderers[rr.Name()] = rr
}

// Resolve returns the renderer for a framework.
func (r *Registry) Resolve(framework spec.Framework) (Renderer, error) {
	rr, ok := r.renderers[string(framework)]
	if !ok {
		return nil, &UnsupportedFrameworkError{
			Framework:  string(framework),
			Registered: r.List(),
		}
	}
	return rr, nil
}

// ResolveForLanguage returns a renderer targeting the given language. With
// several candidates the registry prefers the first in name order, so the
// choice is stable across runs.
func (r *Registry) ResolveForLanguage(lang spec.Language) (Renderer, error) {
	for _, name := range r.List() {
		if rr := r.renderers[name]; rr.Language() == string(lang) {
			return rr, nil
		}
	}
	return nil, fmt.Errorf("no renderer for language: %s", lang)
}

// List returns all registered framework names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate resolves the renderer for a spec and renders it. This is the
// single-spec primitive; batch policy (continue vs. abort) belongs to the
// caller.
func (r *Registry) Generate(s spec.Spec) (string, error) {
	s.Normalize()
	if err := s.Validate(); err != nil {
		return "", err
	}
	rr, err := r.Resolve(s.Framework)
	if err != nil {
		return "", err
	}
	return rr.Render(s)
}

// OutputFileName derives the file name the sink should write. An explicit
// Filename on the spec wins; otherwise the name comes from the subject,
// converted to the renderer's file naming convention.
func OutputFileName(r Renderer, s spec.Spec) string {
	if s.Filename != "" {
		return s.Filename
	}
	switch r.Language() {
	case "python":
		return "test_" + toSnake(s.SubjectName) + r.FileExtension()
	case "java":
		return toPascal(s.SubjectName) + "Test" + r.FileExtension()
	default:
		return toKebab(s.SubjectName) + r.FileExtension()
	}
}
