package commtypes

import (
	"encoding/json"
	"fmt"

	"streamrun/pkg/common_errors"
)

type SnapshotManifestJSONSerdeG struct {
	DefaultJSONSerde
}

func (s SnapshotManifestJSONSerdeG) String() string {
	return "SnapshotManifestJSONSerdeG"
}

var _ = fmt.Stringer(SnapshotManifestJSONSerdeG{})

var _ = SerdeG[SnapshotManifest](SnapshotManifestJSONSerdeG{})

type SnapshotManifestMsgpSerdeG struct {
	DefaultMsgpSerde
}

func (s SnapshotManifestMsgpSerdeG) String() string {
	return "SnapshotManifestMsgpSerdeG"
}

var _ = fmt.Stringer(SnapshotManifestMsgpSerdeG{})

var _ = SerdeG[SnapshotManifest](SnapshotManifestMsgpSerdeG{})

func (s SnapshotManifestJSONSerdeG) Encode(value SnapshotManifest) ([]byte, *[]byte, error) {
	r, err := json.Marshal(value)
	return r, nil, err
}

func (s SnapshotManifestJSONSerdeG) Decode(value []byte) (SnapshotManifest, error) {
	v := SnapshotManifest{}
	if err := json.Unmarshal(value, &v); err != nil {
		return SnapshotManifest{}, err
	}
	return v, nil
}

func (s SnapshotManifestMsgpSerdeG) Encode(value SnapshotManifest) ([]byte, *[]byte, error) {
	b := PopBuffer(value.Msgsize())
	buf := *b
	r, err := value.MarshalMsg(buf[:0])
	return r, b, err
}

func (s SnapshotManifestMsgpSerdeG) Decode(value []byte) (SnapshotManifest, error) {
	v := SnapshotManifest{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return SnapshotManifest{}, err
	}
	return v, nil
}

func GetSnapshotManifestSerdeG(serdeFormat SerdeFormat) (SerdeG[SnapshotManifest], error) {
	if serdeFormat == JSON {
		return SnapshotManifestJSONSerdeG{}, nil
	} else if serdeFormat == MSGP {
		return SnapshotManifestMsgpSerdeG{}, nil
	} else {
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
