package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", TestItem{ID: 1, Name: "first"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", TestItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("first registration wins", func(t *testing.T) {
		err := reg.Register("item1", TestItem{ID: 3, Name: "second"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, err := reg.Get("item1")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Name)
	})
}

func TestGetAndLookup(t *testing.T) {
	reg := New[TestItem]()
	require.NoError(t, reg.Register("item1", TestItem{ID: 1}))

	got, err := reg.Get("item1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	_, err = reg.Get("nonexistent")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, ok := reg.Lookup("nonexistent")
	assert.False(t, ok)
	assert.True(t, reg.Has("item1"))
	assert.False(t, reg.Has(""))
}

func TestRegistrationOrder(t *testing.T) {
	reg := New[TestItem]()
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(name, TestItem{ID: i}))
	}

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, reg.List())

	values := reg.Values()
	require.Len(t, values, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{values[0].ID, values[1].ID, values[2].ID})

	require.NoError(t, reg.Remove("alpha"))
	assert.Equal(t, []string{"charlie", "bravo"}, reg.List())

	err := reg.Remove("alpha")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	// a removed name can be registered again and goes to the end
	require.NoError(t, reg.Register("alpha", TestItem{ID: 9}))
	assert.Equal(t, []string{"charlie", "bravo", "alpha"}, reg.List())
}

func TestClear(t *testing.T) {
	reg := New[TestItem]()
	for i := 0; i < 5; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("item%d", i), TestItem{ID: i}))
	}

	reg.Clear()

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
	assert.Empty(t, reg.Values())
}

func TestConcurrency(t *testing.T) {
	reg := New[TestItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				if err := reg.Register(fmt.Sprintf("g%d_item%d", id, i), TestItem{ID: id*1000 + i}); err != nil {
					t.Errorf("concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*itemsPerGoroutine, reg.Count())
	assert.Len(t, reg.List(), goroutines*itemsPerGoroutine)
}

func TestMustRegister(t *testing.T) {
	reg := New[TestItem]()

	assert.NotPanics(t, func() { MustRegister(reg, "item1", TestItem{ID: 1}) })
	assert.True(t, reg.Has("item1"))
	assert.Panics(t, func() { MustRegister(reg, "item1", TestItem{ID: 2}) })
}

// Plugin interface for testing
type Plugin interface {
	Name() string
}

type testPlugin struct {
	name string
}

func (p *testPlugin) Name() string { return p.name }

func TestWithInterfaces(t *testing.T) {
	reg := New[Plugin]()
	require.NoError(t, reg.Register("p1", &testPlugin{name: "plugin1"}))
	require.NoError(t, reg.Register("p2", &testPlugin{name: "plugin2"}))

	got, err := reg.Get("p2")
	require.NoError(t, err)
	assert.Equal(t, "plugin2", got.Name())
}

func BenchmarkLookup(b *testing.B) {
	reg := New[TestItem]()
	for i := 0; i < 1000; i++ {
		_ = reg.Register(fmt.Sprintf("item%d", i), TestItem{ID: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup(fmt.Sprintf("item%d", i%1000))
	}
}
