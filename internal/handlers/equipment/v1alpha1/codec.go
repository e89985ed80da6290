package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

// Decode unmarshals a Struct request into a JSON-tagged Go value. Unknown fields are
// ignored.
func Decode(req *structpb.Struct, target any) error {
	if req == nil {
		req = &structpb.Struct{}
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// Encode marshals a JSON-tagged Go value into a Struct response
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// FromJSON builds a Struct from a JSON object, as typed on a command line
func FromJSON(data []byte) (*structpb.Struct, error) {
	out := &structpb.Struct{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "request must be a JSON object")
	}
	return out, nil
}

// ToJSON renders a Struct as indented JSON
func ToJSON(s *structpb.Struct) ([]byte, error) {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render response")
	}
	return data, nil
}
