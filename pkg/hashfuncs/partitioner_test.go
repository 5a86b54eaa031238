package hashfuncs

import "testing"

func TestPartitionForKeyInRange(t *testing.T) {
	keys := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("stream"),
		[]byte("some-longer-key-with-more-bytes"),
	}
	for _, n := range []int{1, 2, 3, 8} {
		for _, k := range keys {
			p := PartitionForKey(k, n)
			if p < 0 || p >= n {
				t.Fatalf("key %q routed to %d with %d partitions", k, p, n)
			}
		}
	}
}

func TestPartitionForKeyStable(t *testing.T) {
	k := []byte("user-42")
	first := PartitionForKey(k, 8)
	for i := 0; i < 16; i++ {
		if got := PartitionForKey(k, 8); got != first {
			t.Fatalf("routing not stable: got %d, want %d", got, first)
		}
	}
	if got := PartitionForKeyString("user-42", 8); got != first {
		t.Fatalf("string variant differs: got %d, want %d", got, first)
	}
}
