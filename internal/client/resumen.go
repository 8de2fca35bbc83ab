package client

import (
	"encoding/json"

	"github.com/bytedance/sonic"

	"github.com/ougirez/gerencia/internal/domain/dto"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
)

// Resumen is a decoded summary. Its fields depend on the domain.
type Resumen map[string]json.RawMessage

// Int returns the integer field key, 0 when it is absent or null.
func (r Resumen) Int(key string) int {
	raw, ok := r[key]
	if !ok {
		return 0
	}
	var n *int
	if err := sonic.Unmarshal(raw, &n); err != nil || n == nil {
		return 0
	}
	return *n
}

// Groups returns the grouped count published under key, nil when absent.
func (r Resumen) Groups(key string) []aggregate.Group {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	var groups []aggregate.Group
	if err := sonic.Unmarshal(raw, &groups); err != nil {
		return nil
	}
	return groups
}

// NotComputed lists the fields the server marked as not computed.
func (r Resumen) NotComputed() []string {
	raw, ok := r[dto.NotComputedKey]
	if !ok {
		return nil
	}
	var keys []string
	if err := sonic.Unmarshal(raw, &keys); err != nil {
		return nil
	}
	return keys
}
