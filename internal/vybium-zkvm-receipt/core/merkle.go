package core

// MerkleProof is a sibling-path inclusion proof for a leaf of a binary
// Merkle tree. Digests holds the sibling on each level from the leaf up,
// excluding the root.
type MerkleProof struct {
	// Index of the leaf for which inclusion is being proven.
	Index uint32

	// Sibling digests on the path from the leaf to the root.
	Digests []Digest
}

// Root recomputes the root digest from the leaf and the sibling path,
// using the bits of the index to order each pairwise hash. The caller is
// responsible for comparing the result against a trusted root; this
// routine makes no trust decision itself.
func (p *MerkleProof) Root(leaf Digest, h HashFn) Digest {
	cur := leaf
	index := p.Index
	for _, sibling := range p.Digests {
		if index&1 == 0 {
			cur = HashPair(h, cur, sibling)
		} else {
			cur = HashPair(h, sibling, cur)
		}
		index >>= 1
	}
	return cur
}

// Depth returns the number of levels in the proof path.
func (p *MerkleProof) Depth() int {
	return len(p.Digests)
}
