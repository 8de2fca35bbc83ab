package dto

import (
	"slices"
	"sync"

	"github.com/bytedance/sonic"
)

// NotComputedKey lists the summary fields that are present but deliberately null.
const NotComputedKey = "no_calculado"

// Summary collects the fields of an aggregate summary filled by concurrent queries.
type Summary struct {
	Fields      map[string]any
	NotComputed []string
	fieldsMx    sync.Mutex
}

func NewSummary() *Summary {
	return &Summary{Fields: make(map[string]any)}
}

func (s *Summary) Put(key string, value any) {
	s.fieldsMx.Lock()
	defer s.fieldsMx.Unlock()

	s.Fields[key] = value
}

func (s *Summary) Get(key string) (any, bool) {
	s.fieldsMx.Lock()
	defer s.fieldsMx.Unlock()

	v, ok := s.Fields[key]
	return v, ok
}

// MarkNotComputed emits keys as null and lists them under NotComputedKey.
func (s *Summary) MarkNotComputed(keys ...string) {
	s.fieldsMx.Lock()
	defer s.fieldsMx.Unlock()

	for _, k := range keys {
		s.Fields[k] = nil
		if !slices.Contains(s.NotComputed, k) {
			s.NotComputed = append(s.NotComputed, k)
		}
	}
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	s.fieldsMx.Lock()
	defer s.fieldsMx.Unlock()

	m := make(map[string]any, len(s.Fields)+1)
	for k, v := range s.Fields {
		m[k] = v
	}
	if len(s.NotComputed) > 0 {
		m[NotComputedKey] = s.NotComputed
	}
	return sonic.Marshal(m)
}

// Options collects filter option lists filled by concurrent queries.
type Options struct {
	Values   map[string][]string
	valuesMx sync.Mutex
}

func NewOptions() *Options {
	return &Options{Values: make(map[string][]string)}
}

func (o *Options) Put(key string, values []string) {
	o.valuesMx.Lock()
	defer o.valuesMx.Unlock()

	o.Values[key] = values
}
