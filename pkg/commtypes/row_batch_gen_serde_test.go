package commtypes

import (
	"testing"
)

func TestSerdeRowBatch(t *testing.T) {
	jsonSerdeG := RowBatchJSONSerdeG{}
	jsonSerde := RowBatchJSONSerde{}
	msgSerdeG := RowBatchMsgpSerdeG{}
	msgSerde := RowBatchMsgpSerde{}
	v := RowBatch{
		Rows: []Row{
			{Key: []byte("k0"), Value: []byte("v0"), TsMs: 1},
			{Key: []byte("k1"), Value: []byte("v1"), TsMs: 2},
		},
	}
	GenTestEncodeDecodeDeep[RowBatch](v, t, jsonSerdeG, jsonSerde)
	GenTestEncodeDecodeDeep[RowBatch](v, t, msgSerdeG, msgSerde)
}
