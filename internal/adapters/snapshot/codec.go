package snapshot

import (
	"github.com/fxamacker/cbor/v2"
)

// formatVersion is bumped whenever the record layout changes.
// Snapshots of any other version are treated as missing.
const formatVersion = 1

// encMode uses Core Deterministic Encoding so the same repository always
// produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

// envelope wraps the encoded formula list with its BLAKE3 checksum.
type envelope struct {
	Version  uint     `cbor:"1,keyasint"`
	Checksum [32]byte `cbor:"2,keyasint"`
	Payload  []byte   `cbor:"3,keyasint"`
}

type formulaRecord struct {
	Name                    string                  `cbor:"1,keyasint"`
	Description             string                  `cbor:"2,keyasint"`
	Version                 string                  `cbor:"3,keyasint"`
	Revision                int                     `cbor:"4,keyasint"`
	Dependencies            []string                `cbor:"5,keyasint"`
	OptionalDependencies    []string                `cbor:"6,keyasint"`
	RecommendedDependencies []string                `cbor:"7,keyasint"`
	Bottles                 map[string]bottleRecord `cbor:"8,keyasint"`
}

type bottleRecord struct {
	Cellar string `cbor:"1,keyasint"`
	URL    string `cbor:"2,keyasint"`
	SHA256 string `cbor:"3,keyasint"`
}
