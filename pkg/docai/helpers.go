package docai

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ToJSON converts various types to a JSON string.
// It handles both protocol buffer messages and regular Go structs.
func ToJSON(data interface{}) (string, error) {
	switch v := data.(type) {
	case proto.Message:
		// For protocol buffer messages, use protojson
		jsonData, err := protojson.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(jsonData), nil

	default:
		// For regular Go structs, use standard json package
		jsonData, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(jsonData), nil
	}
}
