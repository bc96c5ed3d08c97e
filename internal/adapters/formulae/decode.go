package formulae

import (
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Decode parses a formula index: a JSON array of formula objects.
// The array is decoded element by element so the whole document is never held twice.
func Decode(r io.Reader) (*domain.Repository, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, parseError(err, "failed to read formula index")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, zerr.Wrap(domain.ErrRepositoryParse, "formula index is not an array")
	}

	var formulae []domain.Formula
	for index := 0; dec.More(); index++ {
		var raw formulaJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, zerr.With(parseError(err, "malformed formula"), "index", index)
		}
		f, err := raw.toDomain(index)
		if err != nil {
			return nil, err
		}
		formulae = append(formulae, f)
	}

	if _, err := dec.Token(); err != nil {
		return nil, parseError(err, "unterminated formula index")
	}

	repo, err := domain.NewRepository(formulae...)
	if err != nil {
		return nil, parseError(err, "invalid formula index")
	}
	return repo, nil
}

// toDomain validates required fields and fills defaults.
func (raw *formulaJSON) toDomain(index int) (domain.Formula, error) {
	if raw.Name == nil || *raw.Name == "" {
		return domain.Formula{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrRepositoryParse, "missing field"),
			"field", "name"), "index", index)
	}
	name := *raw.Name

	missing := func(field string) error {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrRepositoryParse, "missing field"),
			"field", field), "package", name)
	}

	switch {
	case raw.Desc == nil:
		return domain.Formula{}, missing("desc")
	case raw.Versions == nil || raw.Versions.Stable == nil:
		return domain.Formula{}, missing("versions.stable")
	case raw.Dependencies == nil:
		return domain.Formula{}, missing("dependencies")
	}

	f := domain.Formula{
		Name:                    name,
		Description:             *raw.Desc,
		Version:                 *raw.Versions.Stable,
		Dependencies:            *raw.Dependencies,
		OptionalDependencies:    orEmpty(raw.OptionalDependencies),
		RecommendedDependencies: orEmpty(raw.RecommendedDependencies),
		Bottles:                 map[string]domain.Bottle{},
	}
	if raw.Revision != nil {
		f.Revision = *raw.Revision
	}

	if raw.Bottle == nil || raw.Bottle.Stable == nil {
		return f, nil
	}
	for platform, file := range raw.Bottle.Stable.Files {
		switch {
		case file.URL == nil:
			return domain.Formula{}, zerr.With(missing("bottle.stable.files.url"), "platform", platform)
		case file.SHA256 == nil:
			return domain.Formula{}, zerr.With(missing("bottle.stable.files.sha256"), "platform", platform)
		}
		f.Bottles[platform] = domain.Bottle{Cellar: file.Cellar, URL: *file.URL, SHA256: *file.SHA256}
	}
	return f, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parseError(err error, msg string) error {
	return zerr.Wrap(errors.Join(domain.ErrRepositoryParse, err), msg)
}
