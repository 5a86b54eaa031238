package commtypes

import (
	"encoding/json"
	"fmt"

	"streamrun/pkg/common_errors"
)

type CheckpointBarrierJSONSerdeG struct {
	DefaultJSONSerde
}

func (s CheckpointBarrierJSONSerdeG) String() string {
	return "CheckpointBarrierJSONSerdeG"
}

var _ = fmt.Stringer(CheckpointBarrierJSONSerdeG{})

var _ = SerdeG[CheckpointBarrier](CheckpointBarrierJSONSerdeG{})

type CheckpointBarrierMsgpSerdeG struct {
	DefaultMsgpSerde
}

func (s CheckpointBarrierMsgpSerdeG) String() string {
	return "CheckpointBarrierMsgpSerdeG"
}

var _ = fmt.Stringer(CheckpointBarrierMsgpSerdeG{})

var _ = SerdeG[CheckpointBarrier](CheckpointBarrierMsgpSerdeG{})

func (s CheckpointBarrierJSONSerdeG) Encode(value CheckpointBarrier) ([]byte, *[]byte, error) {
	r, err := json.Marshal(value)
	return r, nil, err
}

func (s CheckpointBarrierJSONSerdeG) Decode(value []byte) (CheckpointBarrier, error) {
	v := CheckpointBarrier{}
	if err := json.Unmarshal(value, &v); err != nil {
		return CheckpointBarrier{}, err
	}
	return v, nil
}

func (s CheckpointBarrierMsgpSerdeG) Encode(value CheckpointBarrier) ([]byte, *[]byte, error) {
	b := PopBuffer(value.Msgsize())
	buf := *b
	r, err := value.MarshalMsg(buf[:0])
	return r, b, err
}

func (s CheckpointBarrierMsgpSerdeG) Decode(value []byte) (CheckpointBarrier, error) {
	v := CheckpointBarrier{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return CheckpointBarrier{}, err
	}
	return v, nil
}

func GetCheckpointBarrierSerdeG(serdeFormat SerdeFormat) (SerdeG[CheckpointBarrier], error) {
	if serdeFormat == JSON {
		return CheckpointBarrierJSONSerdeG{}, nil
	} else if serdeFormat == MSGP {
		return CheckpointBarrierMsgpSerdeG{}, nil
	} else {
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
