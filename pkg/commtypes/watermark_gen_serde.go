package commtypes

import (
	"encoding/json"

	"streamrun/pkg/common_errors"
)

type WatermarkJSONSerde struct {
	DefaultJSONSerde
}

var _ = Serde(WatermarkJSONSerde{})

func (s WatermarkJSONSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*Watermark)
	if !ok {
		vTmp := value.(Watermark)
		v = &vTmp
	}
	r, err := json.Marshal(v)
	return r, nil, err
}

func (s WatermarkJSONSerde) Decode(value []byte) (interface{}, error) {
	v := Watermark{}
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type WatermarkMsgpSerde struct {
	DefaultMsgpSerde
}

var _ = Serde(WatermarkMsgpSerde{})

func (s WatermarkMsgpSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*Watermark)
	if !ok {
		vTmp := value.(Watermark)
		v = &vTmp
	}
	b := PopBuffer(v.Msgsize())
	buf := *b
	r, err := v.MarshalMsg(buf[:0])
	return r, b, err
}

func (s WatermarkMsgpSerde) Decode(value []byte) (interface{}, error) {
	v := Watermark{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return nil, err
	}
	return v, nil
}

func GetWatermarkSerde(serdeFormat SerdeFormat) (Serde, error) {
	switch serdeFormat {
	case JSON:
		return WatermarkJSONSerde{}, nil
	case MSGP:
		return WatermarkMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
