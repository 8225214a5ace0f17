package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// jsonValueCodec stores values as their JSON encoding.
type jsonValueCodec[T any] struct{}

// NewJSONValueCodec returns a collections value codec encoding T as JSON.
func NewJSONValueCodec[T any]() collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{}
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bz, &value); err != nil {
		return value, err
	}

	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error) {
	return c.Decode(bz)
}

func (jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (jsonValueCodec[T]) ValueType() string {
	var value T
	return fmt.Sprintf("json/%T", value)
}
