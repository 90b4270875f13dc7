package models

import "encoding/json"

// OrderedSet is a string set that remembers insertion order. Aggregators
// accumulate into it directly and it serializes as a plain JSON array, so
// there is no set-to-slice conversion step at the response boundary.
type OrderedSet struct {
	seen   map[string]struct{}
	values []string
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]struct{})}
}

// Add inserts v if it is not already present. Reports whether v was new.
func (s *OrderedSet) Add(v string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

func (s *OrderedSet) Has(v string) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *OrderedSet) Len() int {
	return len(s.values)
}

// Values returns the members in insertion order. The returned slice is the
// set's backing array; callers must not mutate it.
func (s *OrderedSet) Values() []string {
	return s.values
}

func (s *OrderedSet) MarshalJSON() ([]byte, error) {
	if s == nil || s.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

func (s *OrderedSet) UnmarshalJSON(data []byte) error {
	var vals []string
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = OrderedSet{seen: make(map[string]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return nil
}
