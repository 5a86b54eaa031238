package commtypes

import (
	"encoding/json"
	"fmt"

	"streamrun/pkg/common_errors"
)

type RowBatchJSONSerdeG struct {
	DefaultJSONSerde
}

func (s RowBatchJSONSerdeG) String() string {
	return "RowBatchJSONSerdeG"
}

var _ = fmt.Stringer(RowBatchJSONSerdeG{})

var _ = SerdeG[RowBatch](RowBatchJSONSerdeG{})

type RowBatchMsgpSerdeG struct {
	DefaultMsgpSerde
}

func (s RowBatchMsgpSerdeG) String() string {
	return "RowBatchMsgpSerdeG"
}

var _ = fmt.Stringer(RowBatchMsgpSerdeG{})

var _ = SerdeG[RowBatch](RowBatchMsgpSerdeG{})

func (s RowBatchJSONSerdeG) Encode(value RowBatch) ([]byte, *[]byte, error) {
	r, err := json.Marshal(value)
	return r, nil, err
}

func (s RowBatchJSONSerdeG) Decode(value []byte) (RowBatch, error) {
	v := RowBatch{}
	if err := json.Unmarshal(value, &v); err != nil {
		return RowBatch{}, err
	}
	return v, nil
}

func (s RowBatchMsgpSerdeG) Encode(value RowBatch) ([]byte, *[]byte, error) {
	b := PopBuffer(value.Msgsize())
	buf := *b
	r, err := value.MarshalMsg(buf[:0])
	return r, b, err
}

func (s RowBatchMsgpSerdeG) Decode(value []byte) (RowBatch, error) {
	v := RowBatch{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return RowBatch{}, err
	}
	return v, nil
}

func GetRowBatchSerdeG(serdeFormat SerdeFormat) (SerdeG[RowBatch], error) {
	if serdeFormat == JSON {
		return RowBatchJSONSerdeG{}, nil
	} else if serdeFormat == MSGP {
		return RowBatchMsgpSerdeG{}, nil
	} else {
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
