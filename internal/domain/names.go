package domain

// One selectable location: the lookup key and the label shown to the user.
type NameEntry struct {
	Key   LocationKey
	Label string
}

// NameIndex lists known locations in display order.
// It is fetched once per session and never updated incrementally.
type NameIndex []NameEntry
