package board

import "math/rand"

// fixed seed keeps hashes reproducible across runs
const zobristSeed = 0xC0DE

type zobristKeys struct {
	piece     [2][7][64]uint64 // kind index 0 unused
	castling  [2][4]uint64     // indexed by CastlingRights value
	enPassant [8]uint64        // by file of the target square
	side      uint64           // XORed in when Black is to move
}

func newZobristKeys(seed int64) zobristKeys {
	rnd := rand.New(rand.NewSource(seed))
	var k zobristKeys
	for s := 0; s < 2; s++ {
		for kind := King; kind <= Queen; kind++ {
			for sq := 0; sq < 64; sq++ {
				k.piece[s][kind][sq] = rnd.Uint64()
			}
		}
	}
	for s := 0; s < 2; s++ {
		// no rights contributes nothing, so an empty position hashes to 0
		for cr := 1; cr < 4; cr++ {
			k.castling[s][cr] = rnd.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		k.enPassant[f] = rnd.Uint64()
	}
	k.side = rnd.Uint64()
	return k
}

// stateHash returns the non-placement part of the hash.
func (k *zobristKeys) stateHash(side Side, castling [2]CastlingRights, ep EnPassant) uint64 {
	h := k.castling[White][castling[White]] ^ k.castling[Black][castling[Black]]
	if ep.Possible {
		h ^= k.enPassant[ep.Target.File()]
	}
	if side == Black {
		h ^= k.side
	}
	return h
}

// ComputeHash recomputes the Zobrist hash from scratch. It always equals
// Hash for a consistent board.
func (b *Board) ComputeHash() uint64 {
	k := &b.tables.zobrist
	h := k.stateHash(b.side, b.castling, b.ep)
	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p.Kind != NoKind {
			h ^= k.piece[p.Side][p.Kind][sq]
		}
	}
	return h
}
