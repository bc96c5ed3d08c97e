package formulae

// formulaJSON is one element of the formula index array.
// Pointer fields distinguish an absent required field from its zero value.
type formulaJSON struct {
	Name                    *string       `json:"name"`
	Desc                    *string       `json:"desc"`
	Versions                *versionsJSON `json:"versions"`
	Revision                *int          `json:"revision"`
	Dependencies            *[]string     `json:"dependencies"`
	OptionalDependencies    []string      `json:"optional_dependencies"`
	RecommendedDependencies []string      `json:"recommended_dependencies"`
	Bottle                  *bottleJSON   `json:"bottle"`
}

type versionsJSON struct {
	Stable *string `json:"stable"`
}

type bottleJSON struct {
	Stable *struct {
		Files map[string]bottleFileJSON `json:"files"`
	} `json:"stable"`
}

type bottleFileJSON struct {
	Cellar string  `json:"cellar"`
	URL    *string `json:"url"`
	SHA256 *string `json:"sha256"`
}
