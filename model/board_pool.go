package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board buffers between ticks
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board with the requested dimensions
func (p *BoardPool) Get(rows, cols int) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(rows, cols)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}
