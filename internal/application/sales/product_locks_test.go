package sales

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// La sección crítica de un mismo producto nunca tiene dos dueños a la vez.
func TestProductLocks_ExclusionPorProducto(t *testing.T) {
	locks := newProductLocks()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("p1")
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locks.size(), "las entradas se liberan al quedar sin usuarios")
}

// Productos distintos no se bloquean entre sí.
func TestProductLocks_ProductosIndependientes(t *testing.T) {
	locks := newProductLocks()
	unlockA := locks.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("b")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
	assert.Equal(t, 0, locks.size())
}
