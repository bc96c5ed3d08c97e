package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Bottle references a prebuilt archive of a formula for one platform.
type Bottle struct {
	// Cellar is the cellar path prefix the bottle was built for (e.g. ":any").
	Cellar string

	// URL is the download location of the archive.
	URL string

	// SHA256 is the expected hex digest of the archive.
	SHA256 string
}

// Formula is the metadata record of a single package.
type Formula struct {
	Name        string
	Description string
	Version     string
	Revision    int

	// Dependencies are hard dependencies. Only these affect install order.
	Dependencies []string

	OptionalDependencies    []string
	RecommendedDependencies []string

	// Bottles maps a platform identifier (e.g. "arm64_sonoma") to its bottle.
	Bottles map[string]Bottle
}

// VersionString returns the version and revision joined as "<version>_<revision>".
func (f *Formula) VersionString() string {
	return f.Version + "_" + strconv.Itoa(f.Revision)
}

// BottleFor returns the bottle built for the given platform.
// Returns ErrUnavailableForPlatform if the formula has no bottle for it.
func (f *Formula) BottleFor(platform Platform) (Bottle, error) {
	bottle, ok := f.Bottles[platform.String()]
	if !ok {
		return Bottle{}, zerr.With(zerr.Wrap(ErrUnavailableForPlatform, "no bottle for platform"), "platform", platform.String())
	}
	return bottle, nil
}
