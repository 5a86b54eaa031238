package commtypes

import (
	"encoding/json"

	"streamrun/pkg/common_errors"
)

type RowBatchJSONSerde struct {
	DefaultJSONSerde
}

var _ = Serde(RowBatchJSONSerde{})

func (s RowBatchJSONSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*RowBatch)
	if !ok {
		vTmp := value.(RowBatch)
		v = &vTmp
	}
	r, err := json.Marshal(v)
	return r, nil, err
}

func (s RowBatchJSONSerde) Decode(value []byte) (interface{}, error) {
	v := RowBatch{}
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type RowBatchMsgpSerde struct {
	DefaultMsgpSerde
}

var _ = Serde(RowBatchMsgpSerde{})

func (s RowBatchMsgpSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*RowBatch)
	if !ok {
		vTmp := value.(RowBatch)
		v = &vTmp
	}
	b := PopBuffer(v.Msgsize())
	buf := *b
	r, err := v.MarshalMsg(buf[:0])
	return r, b, err
}

func (s RowBatchMsgpSerde) Decode(value []byte) (interface{}, error) {
	v := RowBatch{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return nil, err
	}
	return v, nil
}

func GetRowBatchSerde(serdeFormat SerdeFormat) (Serde, error) {
	switch serdeFormat {
	case JSON:
		return RowBatchJSONSerde{}, nil
	case MSGP:
		return RowBatchMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
