package domain

import "strconv"

type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyByID
	KeyByName
)

// LocationKey identifies a location on the remote service.
// Depending on the deployment it is either a numeric id or a name.
type LocationKey struct {
	kind KeyKind
	id   int
	name string
}

func ByID(id int) LocationKey { return LocationKey{kind: KeyByID, id: id} }

func ByName(name string) LocationKey { return LocationKey{kind: KeyByName, name: name} }

func (k LocationKey) Kind() KeyKind { return k.kind }

func (k LocationKey) IsZero() bool { return k.kind == KeyNone }

// String returns the key as used for selector option values.
func (k LocationKey) String() string {
	switch k.kind {
	case KeyByID:
		return strconv.Itoa(k.id)
	case KeyByName:
		return k.name
	default:
		return ""
	}
}

// Param returns the query parameter name and value used to look the key up.
func (k LocationKey) Param() (string, string) {
	switch k.kind {
	case KeyByID:
		return "id", strconv.Itoa(k.id)
	case KeyByName:
		return "name", k.name
	default:
		return "", ""
	}
}
