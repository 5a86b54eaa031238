package checkpt

import (
	"math/rand"
	"testing"

	"streamrun/pkg/commtypes"
)

func TestAlignmentCompletesOnLastPartition(t *testing.T) {
	b := commtypes.CheckpointBarrier{Epoch: 1}
	c := NewAlignmentCounter(2)
	if c.Mark(0, b) {
		t.Fatal("alignment reported complete on first of two partitions")
	}
	if !c.IsBlocked(0) {
		t.Fatal("partition 0 not blocked after delivering its barrier")
	}
	if c.IsBlocked(1) {
		t.Fatal("partition 1 blocked before delivering its barrier")
	}
	if !c.Mark(1, b) {
		t.Fatal("alignment not reported complete on the last partition")
	}
	if !c.AllClear() {
		t.Fatal("counter not cleared after alignment completed")
	}
	if c.IsBlocked(0) || c.IsBlocked(1) {
		t.Fatal("partitions still blocked after alignment completed")
	}
}

func TestAlignmentAnyInterleaving(t *testing.T) {
	const n = 7
	b := commtypes.CheckpointBarrier{Epoch: 3}
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		order := rnd.Perm(n)
		c := NewAlignmentCounter(n)
		completions := 0
		for i, p := range order {
			done := c.Mark(p, b)
			if done {
				completions++
				if i != n-1 {
					t.Fatalf("trial %d: completed on delivery %d of %d", trial, i+1, n)
				}
			}
		}
		if completions != 1 {
			t.Fatalf("trial %d: alignment completed %d times", trial, completions)
		}
	}
}

func TestDuplicateBarrierIdempotent(t *testing.T) {
	b := commtypes.CheckpointBarrier{Epoch: 5}
	c := NewAlignmentCounter(3)
	if c.Mark(0, b) {
		t.Fatal("complete after one partition")
	}
	if c.Mark(0, b) {
		t.Fatal("duplicate barrier double-counted")
	}
	if c.Mark(1, b) {
		t.Fatal("complete after two partitions")
	}
	if !c.Mark(2, b) {
		t.Fatal("not complete after all three partitions")
	}
}

func TestWrongEpochIgnoredWhileInFlight(t *testing.T) {
	c := NewAlignmentCounter(2)
	if c.Mark(0, commtypes.CheckpointBarrier{Epoch: 1}) {
		t.Fatal("complete after one partition")
	}
	if c.Mark(1, commtypes.CheckpointBarrier{Epoch: 2}) {
		t.Fatal("mismatched epoch completed the alignment")
	}
	if c.IsBlocked(1) {
		t.Fatal("mismatched epoch blocked the partition")
	}
	if !c.Mark(1, commtypes.CheckpointBarrier{Epoch: 1}) {
		t.Fatal("in-flight epoch did not complete")
	}
}

func TestConsecutiveEpochs(t *testing.T) {
	c := NewAlignmentCounter(2)
	for epoch := uint32(1); epoch <= 3; epoch++ {
		b := commtypes.CheckpointBarrier{Epoch: epoch}
		if c.Mark(0, b) {
			t.Fatalf("epoch %d complete after one partition", epoch)
		}
		if !c.Mark(1, b) {
			t.Fatalf("epoch %d not complete after both partitions", epoch)
		}
	}
}
