package sales

import "sync"

// productLocks exclusión mutua por producto. Las entradas se liberan al quedar sin usuarios.
type productLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newProductLocks() *productLocks {
	return &productLocks{locks: make(map[string]*lockEntry)}
}

// Lock bloquea el producto y devuelve la función que lo libera.
func (p *productLocks) Lock(productID string) func() {
	p.mu.Lock()
	e, ok := p.locks[productID]
	if !ok {
		e = &lockEntry{}
		p.locks[productID] = e
	}
	e.refs++
	p.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		p.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(p.locks, productID)
		}
		p.mu.Unlock()
	}
}

// size cantidad de productos con lock vivo.
func (p *productLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
