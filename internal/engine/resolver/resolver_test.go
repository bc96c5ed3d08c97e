package resolver_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/engine/resolver"
)

func newRepo(t *testing.T, deps map[string][]string) *domain.Repository {
	t.Helper()
	formulae := make([]domain.Formula, 0, len(deps))
	for name, d := range deps {
		formulae = append(formulae, domain.Formula{Name: name, Dependencies: d})
	}
	repo, err := domain.NewRepository(formulae...)
	require.NoError(t, err)
	return repo
}

func indexOf(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, name := range order {
		idx[name] = i
	}
	return idx
}

func TestResolve_Chain(t *testing.T) {
	repo := newRepo(t, map[string][]string{
		"A": nil,
		"B": {"A"},
		"C": {"B"},
	})

	order, err := resolver.Resolve([]string{"C"}, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestResolve_SharedDependency(t *testing.T) {
	// Diamond: top -> left, right; left, right -> base
	repo := newRepo(t, map[string][]string{
		"base":  nil,
		"left":  {"base"},
		"right": {"base"},
		"top":   {"left", "right"},
		"other": {"base"},
	})

	order, err := resolver.Resolve([]string{"top", "other"}, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "left", "right", "top", "other"}, order)
}

func TestResolve_DuplicateRequest(t *testing.T) {
	repo := newRepo(t, map[string][]string{
		"A": nil,
		"B": {"A"},
	})

	order, err := resolver.Resolve([]string{"B", "A", "B"}, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestResolve_OnlyHardDependencies(t *testing.T) {
	repo, err := domain.NewRepository(
		domain.Formula{Name: "ffmpeg", Dependencies: []string{"x264"}, OptionalDependencies: []string{"sdl2"}, RecommendedDependencies: []string{"lame"}},
		domain.Formula{Name: "x264"},
	)
	require.NoError(t, err)

	order, err := resolver.Resolve([]string{"ffmpeg"}, repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"x264", "ffmpeg"}, order)
}

func TestResolve_MissingPackage(t *testing.T) {
	repo := newRepo(t, map[string][]string{
		"A": {"ghost"},
	})

	t.Run("requested", func(t *testing.T) {
		order, err := resolver.Resolve([]string{"nope"}, repo)
		require.ErrorIs(t, err, domain.ErrMissingPackage)
		assert.Nil(t, order)
		assert.Contains(t, err.Error(), "failed to resolve dependencies")
	})

	t.Run("dependency", func(t *testing.T) {
		order, err := resolver.Resolve([]string{"A"}, repo)
		require.ErrorIs(t, err, domain.ErrMissingPackage)
		assert.Nil(t, order)
	})
}

func TestResolve_CycleTerminates(t *testing.T) {
	repo := newRepo(t, map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	order, err := resolver.Resolve([]string{"A"}, repo)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, order)
	assert.Len(t, order, 2)
}

func TestResolve_DeepChain(t *testing.T) {
	const depth = 100_000
	formulae := make([]domain.Formula, depth)
	for i := range depth {
		f := domain.Formula{Name: "p" + strconv.Itoa(i)}
		if i > 0 {
			f.Dependencies = []string{"p" + strconv.Itoa(i-1)}
		}
		formulae[i] = f
	}
	repo, err := domain.NewRepository(formulae...)
	require.NoError(t, err)

	order, err := resolver.Resolve([]string{"p" + strconv.Itoa(depth-1)}, repo)
	require.NoError(t, err)
	require.Len(t, order, depth)
	assert.Equal(t, "p0", order[0])
	assert.Equal(t, "p"+strconv.Itoa(depth-1), order[depth-1])
}

func TestResolve_RandomAcyclicGraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for iter := range 50 {
		n := 2 + rng.IntN(40)
		deps := make(map[string][]string, n)
		for i := range n {
			name := "n" + strconv.Itoa(i)
			var d []string
			// Edges only point to lower indices, which keeps the graph acyclic.
			for j := range i {
				if rng.IntN(4) == 0 {
					d = append(d, "n"+strconv.Itoa(j))
				}
			}
			deps[name] = d
		}
		repo := newRepo(t, deps)

		var requested []string
		for i := range n {
			if rng.IntN(3) == 0 {
				requested = append(requested, "n"+strconv.Itoa(i))
			}
		}
		requested = append(requested, "n"+strconv.Itoa(n-1))

		order, err := resolver.Resolve(requested, repo)
		require.NoError(t, err, "iteration %d", iter)

		idx := indexOf(order)
		require.Len(t, idx, len(order), "duplicate names in %v", order)

		again, err := resolver.Resolve(requested, repo)
		require.NoError(t, err)
		assert.Equal(t, order, again, "resolution must be deterministic")

		for _, name := range order {
			f, _ := repo.Get(name)
			for _, dep := range f.Dependencies {
				depIdx, ok := idx[dep]
				require.True(t, ok, "dependency %s of %s missing from output", dep, name)
				assert.Less(t, depIdx, idx[name], "%s must come before %s", dep, name)
			}
		}
		for _, name := range requested {
			assert.Contains(t, idx, name)
		}
	}
}
