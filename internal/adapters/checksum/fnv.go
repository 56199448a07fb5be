package checksum

import (
	algo "github.com/iamNilotpal/integrity/pkg/checksum"
)

type fnv1a struct {
	name string
}

func NewFNV1a() *fnv1a {
	return &fnv1a{name: string(FNV1a)}
}

func (f *fnv1a) Calculate(data []byte) uint64 {
	hash := algo.FNV1aOffsetBasis
	algo.HashFNV1a(data, &hash)
	return hash
}

func (f *fnv1a) Verify(data []byte, expected uint64) bool {
	return f.Calculate(data) == expected
}

func (f *fnv1a) Size() uint8 {
	return 8
}

func (f *fnv1a) Name() string {
	return f.name
}
