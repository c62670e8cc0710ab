package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityCache_StoreAndGet(t *testing.T) {
	cache := NewCityCache()

	_, ok := cache.Get("MT")
	assert.False(t, ok)
	assert.False(t, cache.Has("MT"))

	cities := []City{{Name: "Cuiabá", MicroregionName: "Cuiabá"}}
	stored := cache.Store("MT", cities)
	assert.Equal(t, cities, stored)

	got, ok := cache.Get("MT")
	require.True(t, ok)
	assert.Equal(t, cities, got)
	assert.Equal(t, 1, cache.Len())
}

func TestCityCache_EntriesAreNeverReplaced(t *testing.T) {
	cache := NewCityCache()

	first := []City{{Name: "Cuiabá"}}
	cache.Store("MT", first)

	kept := cache.Store("MT", []City{{Name: "Outra"}})
	assert.Equal(t, first, kept)

	got, _ := cache.Get("MT")
	assert.Equal(t, first, got)
}

func TestCityCache_EmptyListIsAnEntry(t *testing.T) {
	cache := NewCityCache()
	cache.Store("XX", []City{})
	assert.True(t, cache.Has("XX"))
}

func TestCityCache_Codes(t *testing.T) {
	cache := NewCityCache()
	cache.Store("SP", nil)
	cache.Store("AC", nil)
	cache.Store("MT", nil)

	assert.Equal(t, []string{"AC", "MT", "SP"}, cache.Codes())
}

func TestCityCache_ConcurrentStore(t *testing.T) {
	cache := NewCityCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cache.Store("SP", []City{{Name: "São Paulo"}})
			cache.Get("SP")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Len())
}
