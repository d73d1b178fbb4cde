package clientstore

import "github.com/cortex-platform/console/internal/hashmap"

// Memory implements the Store interface using a thread safe in-memory map
type Memory struct {
	values hashmap.Map[string, string]
}

var _ Store = (*Memory)(nil)

// NewMemory creates a new empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		values: hashmap.NewNormal[string, string](),
	}
}

// Get retrieves the value stored under key
func (memory *Memory) Get(key string) (string, bool) {
	return memory.values.Lookup(key)
}

// Set stores value under key
func (memory *Memory) Set(key, value string) {
	memory.values.Set(key, value)
}

// Remove deletes the value stored under key
func (memory *Memory) Remove(key string) {
	memory.values.Unset(key)
}

// Size returns the amount of stored values
func (memory *Memory) Size() int {
	return memory.values.Size()
}
