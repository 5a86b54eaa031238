package commtypes

import (
	"testing"
)

func TestSerdeWatermark(t *testing.T) {
	jsonSerdeG := WatermarkJSONSerdeG{}
	jsonSerde := WatermarkJSONSerde{}
	msgSerdeG := WatermarkMsgpSerdeG{}
	msgSerde := WatermarkMsgpSerde{}
	for _, v := range []Watermark{
		{},
		EventTimeWatermark(1662000000123),
		IdleWatermark(),
	} {
		GenTestEncodeDecode[Watermark](v, t, jsonSerdeG, jsonSerde)
		GenTestEncodeDecode[Watermark](v, t, msgSerdeG, msgSerde)
	}
}
