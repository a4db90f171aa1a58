package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the API speaks: application/grpc+json
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec carries API messages as JSON over gRPC
type Codec struct{}

// Marshal implements encoding.Codec
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec
func (Codec) Name() string {
	return CodecName
}
