package watermark

import (
	"testing"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/common_errors"

	"golang.org/x/xerrors"
)

func TestMergedIsMinAcrossReported(t *testing.T) {
	h := NewHolder(2)
	got, err := h.Set(0, commtypes.EventTimeWatermark(10))
	if err != nil {
		t.Fatal(err)
	}
	if got.IsNone() || got.Unwrap().TsMs != 10 {
		t.Fatalf("merged after first report: got %v, want 10", got)
	}
	got, err = h.Set(1, commtypes.EventTimeWatermark(5))
	if err != nil {
		t.Fatal(err)
	}
	if got.IsNone() || got.Unwrap().TsMs != 5 {
		t.Fatalf("merged: got %v, want 5", got)
	}
	// p1 advances past p0; merged becomes min(10, 12) = 10, one propagation
	got, err = h.Set(1, commtypes.EventTimeWatermark(12))
	if err != nil {
		t.Fatal(err)
	}
	if got.IsNone() || got.Unwrap().TsMs != 10 {
		t.Fatalf("merged: got %v, want 10", got)
	}
}

func TestRedundantUpdateSuppressed(t *testing.T) {
	h := NewHolder(2)
	if _, err := h.Set(0, commtypes.EventTimeWatermark(3)); err != nil {
		t.Fatal(err)
	}
	// p1 reports above p0: min unchanged, nothing to propagate
	got, err := h.Set(1, commtypes.EventTimeWatermark(7))
	if err != nil {
		t.Fatal(err)
	}
	if got.IsSome() {
		t.Fatalf("expected suppression, got %v", got.Unwrap())
	}
	if h.LastPresent().Unwrap().TsMs != 3 {
		t.Fatalf("merged drifted to %v", h.LastPresent().Unwrap())
	}
}

func TestMergedNonDecreasing(t *testing.T) {
	h := NewHolder(3)
	updates := []struct {
		par int
		ts  int64
	}{
		{0, 1}, {1, 4}, {2, 2}, {0, 5}, {2, 9}, {1, 11}, {0, 8},
	}
	lastMerged := int64(-1)
	for _, u := range updates {
		got, err := h.Set(u.par, commtypes.EventTimeWatermark(u.ts))
		if err != nil {
			t.Fatal(err)
		}
		if got.IsSome() {
			if got.Unwrap().TsMs < lastMerged {
				t.Fatalf("merged regressed from %d to %d", lastMerged, got.Unwrap().TsMs)
			}
			lastMerged = got.Unwrap().TsMs
		}
	}
}

func TestIdlePartitionExcluded(t *testing.T) {
	h := NewHolder(2)
	got, err := h.Set(0, commtypes.IdleWatermark())
	if err != nil {
		t.Fatal(err)
	}
	if got.IsNone() || !got.Unwrap().IsIdle() {
		t.Fatalf("all-idle merge: got %v, want idle", got)
	}
	// an idle partition must not hold back the merged event time
	got, err = h.Set(1, commtypes.EventTimeWatermark(42))
	if err != nil {
		t.Fatal(err)
	}
	if got.IsNone() || got.Unwrap().TsMs != 42 {
		t.Fatalf("merged with idle partition: got %v, want 42", got)
	}
}

func TestOutOfRangePartition(t *testing.T) {
	h := NewHolder(1)
	if _, err := h.Set(1, commtypes.EventTimeWatermark(1)); !xerrors.Is(err, common_errors.ErrPartitionOutOfRange) {
		t.Fatalf("got %v, want ErrPartitionOutOfRange", err)
	}
	if _, err := h.Set(-1, commtypes.EventTimeWatermark(1)); !xerrors.Is(err, common_errors.ErrPartitionOutOfRange) {
		t.Fatalf("got %v, want ErrPartitionOutOfRange", err)
	}
}
