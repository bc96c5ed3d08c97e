// Package resolver computes install order over the hard dependencies of formulae.
package resolver

import (
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/zerr"
)

// frame is one formula on the traversal stack together with the index
// of the next dependency to visit.
type frame struct {
	name string
	deps []string
	next int
}

// Resolve returns the requested packages and their transitive hard dependencies
// in an order where every package follows the packages it depends on.
//
// The traversal is a depth-first post-order walk over Formula.Dependencies.
// A package is marked visited before its dependencies are walked, so a
// dependency cycle terminates without an error; members of a cycle are then
// emitted in discovery order rather than dependency order.
//
// Any name missing from repo fails the whole resolution with domain.ErrMissingPackage.
func Resolve(requested []string, repo *domain.Repository) ([]string, error) {
	order := make([]string, 0, len(requested))
	visited := make(map[string]struct{}, len(requested))
	var stack []frame

	push := func(name string) error {
		f, ok := repo.Get(name)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrMissingPackage, "failed to resolve dependencies"), "package", name)
		}
		visited[name] = struct{}{}
		stack = append(stack, frame{name: name, deps: f.Dependencies})
		return nil
	}

	for _, name := range requested {
		if _, seen := visited[name]; seen {
			continue
		}
		if err := push(name); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.deps) {
				order = append(order, top.name)
				stack = stack[:len(stack)-1]
				continue
			}

			dep := top.deps[top.next]
			top.next++
			if _, seen := visited[dep]; seen {
				continue
			}
			if err := push(dep); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
