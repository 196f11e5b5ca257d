package modular

import (
	"errors"
	"math/big"
	"testing"
)

func TestModInverse(t *testing.T) {
	t.Parallel()
	m := big.NewInt(9689)
	for n := int64(1); n < 500; n++ {
		inv, err := ModInverse(big.NewInt(n), m)
		if err != nil {
			t.Fatalf("ModInverse(%d): %v", n, err)
		}
		p := new(big.Int).Mul(inv, big.NewInt(n))
		if p.Mod(p, m).Int64() != 1 {
			t.Fatalf("%d·%v mod %v != 1", n, inv, m)
		}
	}

	if _, err := ModInverse(big.NewInt(6), big.NewInt(9)); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("ModInverse(6, 9) error = %v, want ErrNotInvertible", err)
	}
	if _, err := ModInverse(big.NewInt(3), big.NewInt(0)); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("ModInverse(3, 0) error = %v, want ErrInvalidModulus", err)
	}
}

func TestIsResidue(t *testing.T) {
	t.Parallel()
	p := big.NewInt(11)
	residues := map[int64]bool{1: true, 3: true, 4: true, 5: true, 9: true}
	for x := int64(0); x < 11; x++ {
		if got := IsResidue(big.NewInt(x), p); got != residues[x] {
			t.Errorf("IsResidue(%d, 11) = %v, want %v", x, got, residues[x])
		}
	}
}

func TestSqrtMod(t *testing.T) {
	t.Parallel()
	// 11 ≡ 3 (mod 4), 13 ≡ 5 (mod 8), 17 ≡ 1 (mod 8)
	for _, prime := range []int64{11, 13, 17, 9689} {
		p := big.NewInt(prime)
		for x := int64(0); x < prime && x < 200; x++ {
			n := big.NewInt(x)
			if x != 0 && !IsResidue(n, p) {
				if _, err := SqrtMod(n, p); !errors.Is(err, ErrNotResidue) {
					t.Errorf("SqrtMod(%d, %d) error = %v, want ErrNotResidue", x, prime, err)
				}
				continue
			}
			r, err := SqrtMod(n, p)
			if err != nil {
				t.Fatalf("SqrtMod(%d, %d): %v", x, prime, err)
			}
			sq := new(big.Int).Mul(r, r)
			if sq.Mod(sq, p).Int64() != x {
				t.Errorf("SqrtMod(%d, %d) = %v, but %v² mod %d = %v", x, prime, r, r, prime, sq)
			}
		}
	}
}

func TestSqrtModInvalidModulus(t *testing.T) {
	t.Parallel()
	for _, p := range []int64{-3, 0, 2, 15} {
		if _, err := SqrtMod(big.NewInt(4), big.NewInt(p)); !errors.Is(err, ErrInvalidModulus) {
			t.Errorf("SqrtMod(4, %d) error = %v, want ErrInvalidModulus", p, err)
		}
	}
}

func TestIsResidueInvalidModulus(t *testing.T) {
	t.Parallel()
	// 4 = 2² would be a residue for any valid prime.
	for _, p := range []*big.Int{nil, big.NewInt(-7), big.NewInt(0), big.NewInt(2), big.NewInt(15)} {
		if IsResidue(big.NewInt(4), p) {
			t.Errorf("IsResidue(4, %v) = true, want false", p)
		}
	}
	if _, err := ModInverse(big.NewInt(3), nil); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("ModInverse(3, nil) error = %v, want ErrInvalidModulus", err)
	}
}
