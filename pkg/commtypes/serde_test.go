package commtypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func GenTestEncodeDecode[V comparable](v V, t *testing.T, serdeG SerdeG[V], serde Serde) {
	bts, buf, err := serdeG.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	ret, err := serdeG.Decode(bts)
	if err != nil {
		t.Fatal(err)
	}
	if v != ret {
		t.Fatal("encode and decode doesn't give same value")
	}
	if serdeG.UsedBufferPool() {
		*buf = bts
		PushBuffer(buf)
	}

	bts, buf, err = serde.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	r, err := serde.Decode(bts)
	if err != nil {
		t.Fatal(err)
	}
	if v != r.(V) {
		t.Fatal("encode and decode doesn't give same value")
	}
	if serde.UsedBufferPool() {
		*buf = bts
		PushBuffer(buf)
	}
}

// GenTestEncodeDecodeDeep is GenTestEncodeDecode for types carrying slices.
func GenTestEncodeDecodeDeep[V any](v V, t *testing.T, serdeG SerdeG[V], serde Serde) {
	bts, buf, err := serdeG.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	ret, err := serdeG.Decode(bts)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, v, ret)
	if serdeG.UsedBufferPool() {
		*buf = bts
		PushBuffer(buf)
	}

	bts, buf, err = serde.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	r, err := serde.Decode(bts)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, v, r.(V))
	if serde.UsedBufferPool() {
		*buf = bts
		PushBuffer(buf)
	}
}
