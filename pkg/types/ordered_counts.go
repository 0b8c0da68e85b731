package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CountEntry is a single label/count pair.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OrderedCounts is a label -> count mapping that remembers the order in which
// labels were first seen. It marshals to a JSON object whose keys keep that order.
type OrderedCounts []CountEntry

// Increment adds one to label, appending it when it has not been seen yet.
func (c *OrderedCounts) Increment(label string) {
	c.Add(label, 1)
}

// Add adds n to label, appending it when it has not been seen yet.
func (c *OrderedCounts) Add(label string, n int) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Count += n
			return
		}
	}
	*c = append(*c, CountEntry{Label: label, Count: n})
}

// Get returns the count for label, or zero when absent.
func (c OrderedCounts) Get(label string) int {
	for _, entry := range c {
		if entry.Label == label {
			return entry.Count
		}
	}
	return 0
}

// Max returns the entry with the highest count. Ties go to the label seen
// first. ok is false when c is empty.
func (c OrderedCounts) Max() (best CountEntry, ok bool) {
	for i, entry := range c {
		if i == 0 || entry.Count > best.Count {
			best = entry
			ok = true
		}
	}
	return best, ok
}

// Labels returns the labels in first-seen order.
func (c OrderedCounts) Labels() []string {
	out := make([]string, 0, len(c))
	for _, entry := range c {
		out = append(out, entry.Label)
	}
	return out
}

func (c OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *OrderedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered counts: expected object")
	}
	out := OrderedCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ordered counts: expected string key")
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("ordered counts: value for %q: %w", key, err)
		}
		out = append(out, CountEntry{Label: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}
