package commtypes

import (
	"encoding/json"

	"streamrun/pkg/common_errors"
)

type SnapshotManifestJSONSerde struct {
	DefaultJSONSerde
}

var _ = Serde(SnapshotManifestJSONSerde{})

func (s SnapshotManifestJSONSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*SnapshotManifest)
	if !ok {
		vTmp := value.(SnapshotManifest)
		v = &vTmp
	}
	r, err := json.Marshal(v)
	return r, nil, err
}

func (s SnapshotManifestJSONSerde) Decode(value []byte) (interface{}, error) {
	v := SnapshotManifest{}
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type SnapshotManifestMsgpSerde struct {
	DefaultMsgpSerde
}

var _ = Serde(SnapshotManifestMsgpSerde{})

func (s SnapshotManifestMsgpSerde) Encode(value interface{}) ([]byte, *[]byte, error) {
	v, ok := value.(*SnapshotManifest)
	if !ok {
		vTmp := value.(SnapshotManifest)
		v = &vTmp
	}
	b := PopBuffer(v.Msgsize())
	buf := *b
	r, err := v.MarshalMsg(buf[:0])
	return r, b, err
}

func (s SnapshotManifestMsgpSerde) Decode(value []byte) (interface{}, error) {
	v := SnapshotManifest{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return nil, err
	}
	return v, nil
}

func GetSnapshotManifestSerde(serdeFormat SerdeFormat) (Serde, error) {
	switch serdeFormat {
	case JSON:
		return SnapshotManifestJSONSerde{}, nil
	case MSGP:
		return SnapshotManifestMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
