package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := New[string, int](0)
	m.Set("piper", 1)
	m.Set("seabrass", 2)
	m.Set("wonky", 3)

	assert.Equal(t, []string{"piper", "seabrass", "wonky"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := New[string, int](0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map[uint32, string]
	assert.False(t, m.Has(7))
	assert.Equal(t, 0, m.Len())

	m.Set(7, "fez")
	assert.True(t, m.Has(7))

	_, ok := m.Get(8)
	assert.False(t, ok)
}

func TestMap_Nil(t *testing.T) {
	var m *Map[string, int]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	m.Each(func(string, int) bool {
		t.Fatal("Each visited an entry of a nil map")
		return true
	})
}

func TestMap_EachStops(t *testing.T) {
	m := New[int, int](4)
	for i := range 4 {
		m.Set(i, i*i)
	}

	var seen []int
	m.Each(func(k, v int) bool {
		seen = append(seen, v)
		return k < 1
	})
	assert.Equal(t, []int{0, 1}, seen)
}

func TestMap_KeysIsACopy(t *testing.T) {
	m := New[string, int](0)
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "z"
	assert.True(t, m.Has("a"))
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_SetAfterNew(t *testing.T) {
	m := New[uint32, string](2)
	m.Set(3, "fez")
	m.Set(1, "crown")
	m.Set(2, "bowler")

	var keys []uint32
	m.Each(func(k uint32, _ string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []uint32{3, 1, 2}, keys)
	assert.Equal(t, []string{"fez", "crown", "bowler"}, m.Values())
}
