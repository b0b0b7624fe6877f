package boltseq

import (
	"bytes"
	"encoding/gob"
)

//go:generate mockgen -destination codec_mocks_test.go -source codec.go -package boltseq_test

// Codec encodes stored values to and from their bucket representation.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, ptr interface{}) error
}

// GobCodec is the default Codec, it uses encoding/gob.
type GobCodec struct{}

func (GobCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(v)
	return buf.Bytes(), err
}

func (GobCodec) Unmarshal(data []byte, ptr interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(ptr)
}
