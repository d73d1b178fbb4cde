package hashmap

import "sync"

// NormalMap implements the Map interface by wrapping the builtin map type with a RWMutex
type NormalMap[K comparable, V any] struct {
	mtx        sync.RWMutex
	underlying map[K]V
}

var _ Map[int, any] = (*NormalMap[int, any])(nil)

// NewNormal creates a new normal thread safe Map
func NewNormal[K comparable, V any]() *NormalMap[K, V] {
	return &NormalMap[K, V]{
		underlying: make(map[K]V),
	}
}

func (hashMap *NormalMap[K, V]) Size() int {
	hashMap.mtx.RLock()
	defer hashMap.mtx.RUnlock()
	return len(hashMap.underlying)
}

func (hashMap *NormalMap[K, V]) Has(key K) bool {
	_, ok := hashMap.Lookup(key)
	return ok
}

func (hashMap *NormalMap[K, V]) Lookup(key K) (V, bool) {
	hashMap.mtx.RLock()
	defer hashMap.mtx.RUnlock()
	val, ok := hashMap.underlying[key]
	return val, ok
}

func (hashMap *NormalMap[K, V]) Set(key K, value V) {
	hashMap.mtx.Lock()
	defer hashMap.mtx.Unlock()
	hashMap.underlying[key] = value
}

func (hashMap *NormalMap[K, V]) Unset(key K) {
	hashMap.mtx.Lock()
	defer hashMap.mtx.Unlock()
	delete(hashMap.underlying, key)
}

func (hashMap *NormalMap[K, V]) BootstrappedManipulation(action func(underlying map[K]V)) {
	hashMap.mtx.Lock()
	defer hashMap.mtx.Unlock()
	action(hashMap.underlying)
}
