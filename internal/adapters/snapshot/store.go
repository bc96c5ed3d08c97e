// Package snapshot persists the parsed formula repository between runs.
package snapshot

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store reads and writes the repository snapshot at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store for the index file inside dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: domain.IndexPath(dataDir)}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. Every failure, including a missing file, wraps ErrSnapshot.
func (s *Store) Load() (*domain.Repository, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.error(err, "failed to read snapshot")
	}

	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, s.error(err, "failed to decode snapshot")
	}
	if env.Version != formatVersion {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSnapshot, "unsupported snapshot version"),
			"path", s.path), "version", env.Version)
	}
	if blake3.Sum256(env.Payload) != env.Checksum {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshot, "snapshot checksum mismatch"), "path", s.path)
	}

	var records []formulaRecord
	if err := decMode.Unmarshal(env.Payload, &records); err != nil {
		return nil, s.error(err, "failed to decode snapshot payload")
	}

	formulae := make([]domain.Formula, 0, len(records))
	for i := range records {
		formulae = append(formulae, fromRecord(&records[i]))
	}

	repo, err := domain.NewRepository(formulae...)
	if err != nil {
		return nil, s.error(err, "invalid snapshot contents")
	}
	return repo, nil
}

// Save writes repo atomically: a temp file in the same directory is renamed over the old snapshot.
func (s *Store) Save(repo *domain.Repository) (err error) {
	records := make([]formulaRecord, 0, repo.Len())
	for f := range repo.All() {
		records = append(records, toRecord(&f))
	}

	payload, err := encMode.Marshal(records)
	if err != nil {
		return s.error(err, "failed to encode snapshot")
	}
	data, err := encMode.Marshal(envelope{
		Version:  formatVersion,
		Checksum: blake3.Sum256(payload),
		Payload:  payload,
	})
	if err != nil {
		return s.error(err, "failed to encode snapshot")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return s.error(err, "failed to create data directory")
	}

	tmp, err := os.CreateTemp(dir, domain.IndexFileName+".*.tmp")
	if err != nil {
		return s.error(err, "failed to create snapshot file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return s.error(err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		return s.error(err, "failed to write snapshot")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return s.error(err, "failed to replace snapshot")
	}
	return nil
}

// Clean deletes the snapshot. A missing snapshot is not an error.
func (s *Store) Clean() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return s.error(err, "failed to remove snapshot")
	}
	return nil
}

func (s *Store) error(err error, msg string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshot, err), msg), "path", s.path)
}

func toRecord(f *domain.Formula) formulaRecord {
	var bottles map[string]bottleRecord
	if f.Bottles != nil {
		bottles = make(map[string]bottleRecord, len(f.Bottles))
		for platform, b := range f.Bottles {
			bottles[platform] = bottleRecord{Cellar: b.Cellar, URL: b.URL, SHA256: b.SHA256}
		}
	}
	return formulaRecord{
		Name:                    f.Name,
		Description:             f.Description,
		Version:                 f.Version,
		Revision:                f.Revision,
		Dependencies:            f.Dependencies,
		OptionalDependencies:    f.OptionalDependencies,
		RecommendedDependencies: f.RecommendedDependencies,
		Bottles:                 bottles,
	}
}

func fromRecord(r *formulaRecord) domain.Formula {
	var bottles map[string]domain.Bottle
	if r.Bottles != nil {
		bottles = make(map[string]domain.Bottle, len(r.Bottles))
		for platform, b := range r.Bottles {
			bottles[platform] = domain.Bottle{Cellar: b.Cellar, URL: b.URL, SHA256: b.SHA256}
		}
	}
	return domain.Formula{
		Name:                    r.Name,
		Description:             r.Description,
		Version:                 r.Version,
		Revision:                r.Revision,
		Dependencies:            r.Dependencies,
		OptionalDependencies:    r.OptionalDependencies,
		RecommendedDependencies: r.RecommendedDependencies,
		Bottles:                 bottles,
	}
}
