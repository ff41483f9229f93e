package factory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneService struct {
	created bool
}

type twoService struct {
	name string
}

type threeService struct{}

func newOne(...interface{}) (interface{}, error) {
	return &oneService{created: true}, nil
}

func newTwo(args ...interface{}) (interface{}, error) {
	two := &twoService{}
	if len(args) > 0 {
		name, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid name argument: %T", args[0])
		}
		two.name = name
	}
	return two, nil
}

func newThree(...interface{}) (interface{}, error) {
	return &threeService{}, nil
}

func builtinServices() []Service {
	return []Service{
		{Key: "one", New: newOne},
		{Key: "two", New: newTwo},
	}
}

// TestNewInstance tests the factory NewInstance method.
func TestNewInstance(t *testing.T) {
	f := New("fixture", builtinServices())

	t.Run("Registered", func(t *testing.T) {
		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &oneService{}, instance)

		other, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.False(t, instance == other, "each call should create a new instance")
	})

	t.Run("Arguments", func(t *testing.T) {
		instance, err := f.NewInstance("two", "second")
		require.NoError(t, err)
		require.IsType(t, &twoService{}, instance)
		assert.Equal(t, "second", instance.(*twoService).name)
	})

	t.Run("ConstructorError", func(t *testing.T) {
		_, err := f.NewInstance("two", 2)
		require.Error(t, err)
		assert.False(t, IsNotRegistered(err))
	})

	t.Run("NotRegistered", func(t *testing.T) {
		_, err := f.NewInstance("unknown")
		require.Error(t, err)
		assert.True(t, IsNotRegistered(err))
		assert.Equal(t, "Service unknown is not registered", err.Error())
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		_, err := f.NewInstance("One")
		require.Error(t, err)
		assert.Equal(t, "Service One is not registered", err.Error())
	})
}

// TestNewWithOverrides tests creating the factory with the caller provided services.
func TestNewWithOverrides(t *testing.T) {
	t.Run("Extend", func(t *testing.T) {
		f := New("fixture", builtinServices(), Service{Key: "three", New: newThree})

		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &oneService{}, instance)

		instance, err = f.NewInstance("three")
		require.NoError(t, err)
		assert.IsType(t, &threeService{}, instance)

		assert.Equal(t, []string{"one", "two", "three"}, f.Keys())
	})

	t.Run("Overwrite", func(t *testing.T) {
		f := New("fixture", builtinServices(), Service{Key: "one", New: newThree})

		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &threeService{}, instance)
		assert.Equal(t, []string{"one", "two"}, f.Keys())
	})

	t.Run("LaterWins", func(t *testing.T) {
		f := New("fixture", nil, Service{Key: "one", New: newOne}, Service{Key: "one", New: newThree})

		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &threeService{}, instance)
		assert.Equal(t, 1, f.Len())
	})

	t.Run("NilConstructor", func(t *testing.T) {
		f := New("fixture", builtinServices(), Service{Key: "one"}, Service{Key: "four"})

		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &oneService{}, instance)
		assert.False(t, f.Has("four"))
		assert.Equal(t, []string{"one", "two"}, f.Keys())

		f = NewWithMap("fixture", builtinServices(), map[string]Constructor{"two": nil})
		instance, err = f.NewInstance("two")
		require.NoError(t, err)
		assert.IsType(t, &twoService{}, instance)
	})

	t.Run("Map", func(t *testing.T) {
		f := NewWithMap("fixture", builtinServices(), map[string]Constructor{
			"three": newThree,
			"one":   newThree,
			"alpha": newOne,
		})

		assert.Equal(t, []string{"one", "two", "alpha", "three"}, f.Keys())
		instance, err := f.NewInstance("one")
		require.NoError(t, err)
		assert.IsType(t, &threeService{}, instance)
	})
}

// TestIntrospection tests the factory registry getters.
func TestIntrospection(t *testing.T) {
	f := New("fixture", builtinServices())

	assert.Equal(t, "fixture", f.Name())
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Has("one"))
	assert.False(t, f.Has("three"))

	keys := f.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"one", "two"}, f.Keys())
}

// TestConcurrentNewInstance checks that the factory might be used concurrently.
func TestConcurrentNewInstance(t *testing.T) {
	f := New("fixture", builtinServices())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instance, err := f.NewInstance("one")
			assert.NoError(t, err)
			assert.IsType(t, &oneService{}, instance)
		}()
	}
	wg.Wait()
}
