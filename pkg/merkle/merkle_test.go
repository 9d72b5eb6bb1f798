package merkle

import (
	"bytes"
	"testing"
)

func commitmentFixture(b byte) []byte {
	buf := make([]byte, 33)
	buf[0] = 0x02
	for i := 1; i < 33; i++ {
		buf[i] = b
	}
	return buf
}

func TestDepthZeroSingleLeafIsRoot(t *testing.T) {
	leaf := Leaf(commitmentFixture(0xAA))
	root, paths, err := Build([][HashSize]byte{leaf}, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root != leaf {
		t.Fatal("depth-0 tree root must equal the single leaf")
	}
	if len(paths[0]) != 0 {
		t.Fatal("depth-0 path must be empty")
	}
	if !VerifyPath(leaf, paths[0], root) {
		t.Fatal("depth-0 path must verify")
	}
}

func TestFullDepthTreeAllPathsVerify(t *testing.T) {
	const depth = 4
	n := 1 << depth
	leaves := make([][HashSize]byte, n)
	for i := 0; i < n; i++ {
		leaves[i] = Leaf(commitmentFixture(byte(i)))
	}
	root, paths, err := Build(leaves, depth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, p := range paths {
		if err := CheckPathDepth(p, depth); err != nil {
			t.Fatalf("leaf %d: %v", i, err)
		}
		if !VerifyPath(leaves[i], p, root) {
			t.Fatalf("leaf %d: path did not verify", i)
		}
	}
}

func TestPartiallyFilledTreeLeftSideOnly(t *testing.T) {
	const depth = 3
	leaves := make([][HashSize]byte, 3) // only left-most slots populated
	for i := range leaves {
		leaves[i] = Leaf(commitmentFixture(byte(10 + i)))
	}
	root, paths, err := Build(leaves, depth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, p := range paths {
		if !VerifyPath(leaves[i], p, root) {
			t.Fatalf("leaf %d: path did not verify in partially filled tree", i)
		}
	}
}

func TestByteFlipBreaksVerification(t *testing.T) {
	const depth = 3
	n := 1 << depth
	leaves := make([][HashSize]byte, n)
	for i := 0; i < n; i++ {
		leaves[i] = Leaf(commitmentFixture(byte(i)))
	}
	root, paths, err := Build(leaves, depth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	t.Run("flipped leaf", func(t *testing.T) {
		leaf := leaves[2]
		leaf[0] ^= 0x01
		if VerifyPath(leaf, paths[2], root) {
			t.Fatal("flipped leaf must not verify")
		}
	})

	t.Run("flipped path sibling", func(t *testing.T) {
		p := make(Path, len(paths[2]))
		copy(p, paths[2])
		p[0].Sibling[0] ^= 0x01
		if VerifyPath(leaves[2], p, root) {
			t.Fatal("flipped path sibling must not verify")
		}
	})

	t.Run("flipped root", func(t *testing.T) {
		badRoot := root
		badRoot[0] ^= 0x01
		if VerifyPath(leaves[2], paths[2], badRoot) {
			t.Fatal("flipped root must not verify")
		}
	})
}

func TestTooManyLeavesRejected(t *testing.T) {
	leaves := make([][HashSize]byte, 5)
	if _, _, err := Build(leaves, 2); err != ErrTooManyLeaves {
		t.Fatalf("expected ErrTooManyLeaves, got %v", err)
	}
}

func TestLeafDomainSeparationFromNode(t *testing.T) {
	l := Leaf(commitmentFixture(1))
	n := node(l, l)
	if bytes.Equal(l[:], n[:]) {
		t.Fatal("leaf and node domain tags must not collide")
	}
}
