package commtypes

import (
	"encoding/json"
	"fmt"

	"streamrun/pkg/common_errors"
)

type WatermarkJSONSerdeG struct {
	DefaultJSONSerde
}

func (s WatermarkJSONSerdeG) String() string {
	return "WatermarkJSONSerdeG"
}

var _ = fmt.Stringer(WatermarkJSONSerdeG{})

var _ = SerdeG[Watermark](WatermarkJSONSerdeG{})

type WatermarkMsgpSerdeG struct {
	DefaultMsgpSerde
}

func (s WatermarkMsgpSerdeG) String() string {
	return "WatermarkMsgpSerdeG"
}

var _ = fmt.Stringer(WatermarkMsgpSerdeG{})

var _ = SerdeG[Watermark](WatermarkMsgpSerdeG{})

func (s WatermarkJSONSerdeG) Encode(value Watermark) ([]byte, *[]byte, error) {
	r, err := json.Marshal(value)
	return r, nil, err
}

func (s WatermarkJSONSerdeG) Decode(value []byte) (Watermark, error) {
	v := Watermark{}
	if err := json.Unmarshal(value, &v); err != nil {
		return Watermark{}, err
	}
	return v, nil
}

func (s WatermarkMsgpSerdeG) Encode(value Watermark) ([]byte, *[]byte, error) {
	b := PopBuffer(value.Msgsize())
	buf := *b
	r, err := value.MarshalMsg(buf[:0])
	return r, b, err
}

func (s WatermarkMsgpSerdeG) Decode(value []byte) (Watermark, error) {
	v := Watermark{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return Watermark{}, err
	}
	return v, nil
}

func GetWatermarkSerdeG(serdeFormat SerdeFormat) (SerdeG[Watermark], error) {
	if serdeFormat == JSON {
		return WatermarkJSONSerdeG{}, nil
	} else if serdeFormat == MSGP {
		return WatermarkMsgpSerdeG{}, nil
	} else {
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
