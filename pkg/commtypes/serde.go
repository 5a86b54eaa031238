//go:generate stringer -type=SerdeFormat
package commtypes

type SerdeFormat uint8

const (
	JSON SerdeFormat = 0
	MSGP SerdeFormat = 1
)

type Encoder interface {
	Encode(interface{}) ([]byte, *[]byte, error)
}

type EncoderG[V any] interface {
	Encode(v V) ([]byte, *[]byte, error)
}

type Decoder interface {
	Decode([]byte) (interface{}, error)
}

type DecoderG[V any] interface {
	Decode([]byte) (V, error)
}

type Serde interface {
	Encoder
	Decoder
	UsedBufferPool() bool
}

type SerdeG[V any] interface {
	EncoderG[V]
	DecoderG[V]
	UsedBufferPool() bool
}

// DefaultJSONSerde marks a serde whose Encode allocates a fresh slice; the
// returned *[]byte is always nil.
type DefaultJSONSerde struct{}

func (s DefaultJSONSerde) UsedBufferPool() bool { return false }

// DefaultMsgpSerde marks a serde whose Encode draws from the leveled buffer
// pool; callers must PushBuffer the returned *[]byte when done.
type DefaultMsgpSerde struct{}

func (s DefaultMsgpSerde) UsedBufferPool() bool { return true }
