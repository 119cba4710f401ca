package mesh

import (
	"encoding/json"
	"fmt"
)

// Kind is the closed set of mesh node types.
type Kind int

const (
	// KindGroup is a pure container with no geometry of its own.
	KindGroup Kind = iota
	// KindGeometry is a leaf carrying a geometry payload.
	KindGeometry
	// KindGeoGroup carries both a payload and children.
	KindGeoGroup
)

var kindNames = map[Kind]string{
	KindGroup:    "Group",
	KindGeometry: "Geometry",
	KindGeoGroup: "GeoGroup",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown mesh kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, kn := range kindNames {
		if kn == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown mesh kind %q", name)
}
