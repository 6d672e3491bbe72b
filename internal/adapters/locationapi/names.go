package locationapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"location-viewer/internal/domain"
	"log"
	"math"
	"strconv"
	"strings"
)

// listResponse holds the raw list payload. Depending on the deployment each
// element is either a name or an [id, name] pair.
type listResponse []json.RawMessage

// index decodes every element. Elements that cannot be decoded are logged
// and left out; the rest of the list stays usable.
func (l listResponse) index() domain.NameIndex {
	out := make(domain.NameIndex, 0, len(l))
	for i, raw := range l {
		e, err := decodeEntry(raw)
		if err != nil {
			log.Printf("list names: skipping entry %d: %v", i, err)
			continue
		}
		out = append(out, e)
	}
	return out
}

func decodeEntry(raw json.RawMessage) (domain.NameEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return domain.NameEntry{}, fmt.Errorf("empty element")
	}

	switch raw[0] {
	case '"':
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return domain.NameEntry{}, fmt.Errorf("decode name: %w", err)
		}
		return domain.NameEntry{Key: domain.ByName(name), Label: name}, nil

	case '[':
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return domain.NameEntry{}, fmt.Errorf("decode pair: %w", err)
		}
		if len(pair) != 2 {
			return domain.NameEntry{}, fmt.Errorf("pair has %d elements, want 2", len(pair))
		}

		id, err := decodeID(pair[0])
		if err != nil {
			return domain.NameEntry{}, fmt.Errorf("decode pair id: %w", err)
		}
		var name string
		if err := json.Unmarshal(pair[1], &name); err != nil {
			return domain.NameEntry{}, fmt.Errorf("decode pair name: %w", err)
		}
		return domain.NameEntry{Key: domain.ByID(id), Label: name}, nil
	}

	return domain.NameEntry{}, fmt.Errorf("unsupported element %s", raw)
}

// decodeID accepts an integral JSON number (1, 1.0, 1e2) or a string
// holding one.
func decodeID(raw json.RawMessage) (int, error) {
	var text string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
		text = n.String()
	}

	if id, err := strconv.Atoi(text); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not a number", text)
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("id %v is not an integer", f)
	}
	return int(f), nil
}
