package lm

const poolBlockSize = 4096

// nodePool hands out Node records from fixed-size blocks. Individually
// deleted nodes go on a free list for reuse; everything is reclaimed at
// once when the trie (and with it the pool) is dropped.
type nodePool struct {
	blocks [][]Node
	used   int // entries used in the last block
	free   []*Node
}

func newNodePool() *nodePool {
	return &nodePool{}
}

func (p *nodePool) alloc() *Node {
	if n := len(p.free); n > 0 {
		ng := p.free[n-1]
		p.free = p.free[:n-1]
		*ng = Node{}
		return ng
	}
	if len(p.blocks) == 0 || p.used == poolBlockSize {
		p.blocks = append(p.blocks, make([]Node, poolBlockSize))
		p.used = 0
	}
	blk := p.blocks[len(p.blocks)-1]
	ng := &blk[p.used]
	p.used++
	return ng
}

func (p *nodePool) release(ng *Node) {
	p.free = append(p.free, ng)
}
