package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Repository is an immutable mapping from package name to Formula.
// It is safe for concurrent use once constructed.
type Repository struct {
	formulae map[string]Formula
	names    []string
}

// NewRepository builds a Repository from the given formulae.
// It returns ErrDuplicatePackage if two formulae share a name.
func NewRepository(formulae ...Formula) (*Repository, error) {
	r := &Repository{
		formulae: make(map[string]Formula, len(formulae)),
		names:    make([]string, 0, len(formulae)),
	}
	for i := range formulae {
		f := formulae[i]
		if _, exists := r.formulae[f.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicatePackage, "failed to build repository"), "package", f.Name)
		}
		r.formulae[f.Name] = f
		r.names = append(r.names, f.Name)
	}
	slices.Sort(r.names)
	return r, nil
}

// Get returns the formula with the given name.
func (r *Repository) Get(name string) (Formula, bool) {
	f, ok := r.formulae[name]
	return f, ok
}

// Len returns the number of formulae in the repository.
func (r *Repository) Len() int {
	return len(r.formulae)
}

// Names returns all package names in sorted order.
func (r *Repository) Names() []string {
	return slices.Clone(r.names)
}

// All yields every formula ordered by name.
func (r *Repository) All() iter.Seq[Formula] {
	return func(yield func(Formula) bool) {
		for _, name := range r.names {
			if !yield(r.formulae[name]) {
				return
			}
		}
	}
}

// Lookup maps names to their formulae, preserving order.
// It returns ErrMissingPackage for the first unknown name.
func (r *Repository) Lookup(names []string) ([]Formula, error) {
	out := make([]Formula, 0, len(names))
	for _, name := range names {
		f, ok := r.formulae[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrMissingPackage, "unknown package"), "package", name)
		}
		out = append(out, f)
	}
	return out, nil
}
