package store

import (
	"context"
	"testing"
)

func runKVTableTests(t *testing.T, st KeyValueTable) {
	ctx := context.Background()
	if err := st.Put(ctx, []byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := st.Put(ctx, []byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := st.Put(ctx, []byte("c"), []byte("3")); err != nil {
		t.Fatal(err)
	}
	v, ok, err := st.Get(ctx, []byte("a"))
	if err != nil || !ok || string(v) != "1" {
		t.Fatalf("get a: %q %v %v", v, ok, err)
	}
	if _, ok, _ := st.Get(ctx, []byte("missing")); ok {
		t.Fatal("missing key found")
	}
	n, _ := st.ApproximateNumEntries()
	if n != 3 {
		t.Fatalf("num entries %d, want 3", n)
	}

	var keys []string
	err = st.Range(ctx, []byte("a"), []byte("c"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("range [a,c): %v", keys)
	}

	snap := st.Snapshot()
	if err := st.Delete(ctx, []byte("a")); err != nil {
		t.Fatal(err)
	}
	// Put with nil value is a delete
	if err := st.Put(ctx, []byte("b"), nil); err != nil {
		t.Fatal(err)
	}
	n, _ = st.ApproximateNumEntries()
	if n != 1 {
		t.Fatalf("num entries after deletes %d, want 1", n)
	}
	if err := st.Restore(snap); err != nil {
		t.Fatal(err)
	}
	n, _ = st.ApproximateNumEntries()
	if n != 3 {
		t.Fatalf("num entries after restore %d, want 3", n)
	}
}

func TestBTreeKeyValueTable(t *testing.T) {
	runKVTableTests(t, NewBTreeKeyValueTable("test"))
}

func TestSkipmapKeyValueTable(t *testing.T) {
	runKVTableTests(t, NewSkipmapKeyValueTable("test"))
}
