package commtypes

import (
	"encoding/json"

	"streamrun/pkg/common_errors"
)

type CheckpointBarrierJSONSerde struct {
	DefaultJSONSerde
}

var _ = Serde(CheckpointBarrierJSONSerde{})

func (s CheckpointBarrierJSONSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*CheckpointBarrier)
	if !ok {
		vTmp := value.(CheckpointBarrier)
		v = &vTmp
	}
	r, err := json.Marshal(v)
	return r, nil, err
}

func (s CheckpointBarrierJSONSerde) Decode(value []byte) (interface{}, error) {
	v := CheckpointBarrier{}
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type CheckpointBarrierMsgpSerde struct {
	DefaultMsgpSerde
}

var _ = Serde(CheckpointBarrierMsgpSerde{})

func (s CheckpointBarrierMsgpSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*CheckpointBarrier)
	if !ok {
		vTmp := value.(CheckpointBarrier)
		v = &vTmp
	}
	b := PopBuffer(v.Msgsize())
	buf := *b
	r, err := v.MarshalMsg(buf[:0])
	return r, b, err
}

func (s CheckpointBarrierMsgpSerde) Decode(value []byte) (interface{}, error) {
	v := CheckpointBarrier{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return nil, err
	}
	return v, nil
}

func GetCheckpointBarrierSerde(serdeFormat SerdeFormat) (Serde, error) {
	switch serdeFormat {
	case JSON:
		return CheckpointBarrierJSONSerde{}, nil
	case MSGP:
		return CheckpointBarrierMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
