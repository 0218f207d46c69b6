package domain

// Targeting describes who an ad group should reach. Empty lists mean no
// restriction on that dimension.
type Targeting struct {
	Languages   []string `json:"languages,omitempty"`
	Geos        []string `json:"geos,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Communities []string `json:"communities,omitempty"`
	Devices     []string `json:"devices,omitempty"`
	Placements  []string `json:"placements,omitempty"`
}

// IsEmpty reports whether no dimension is restricted.
func (t Targeting) IsEmpty() bool {
	return len(t.Languages) == 0 && len(t.Geos) == 0 && len(t.Interests) == 0 &&
		len(t.Communities) == 0 && len(t.Devices) == 0 && len(t.Placements) == 0
}
