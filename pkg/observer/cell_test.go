package observer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_ZeroValue(t *testing.T) {
	var c Cell[string]

	assert.Equal(t, "", c.Get())
	c.Set("a")
	assert.Equal(t, "a", c.Get())
}

func TestCell_Replace(t *testing.T) {
	c := NewCell(1)

	old := c.Replace(2)

	assert.Equal(t, 1, old)
	assert.Equal(t, 2, c.Get())
}

// TestCell_ConcurrentAccess проверяет чтение ячейки во время записи (запускать с -race)
func TestCell_ConcurrentAccess(t *testing.T) {
	c := NewCell(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			c.Set(v)
		}(i)
		go func() {
			defer wg.Done()
			_ = c.Get()
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, c.Get(), 0)
}

func TestRealObserver_UpdateReturnsSameCell(t *testing.T) {
	o := NewRealObserver(value1)

	assert.Same(t, o.Update(), o.Update())

	o.Update().Set(value2)
	assert.Equal(t, value2, o.Value())
}
