package checksum

import (
	algo "github.com/iamNilotpal/integrity/pkg/checksum"
)

type fletcher16 struct {
	name string
}

func NewFletcher16() *fletcher16 {
	return &fletcher16{name: string(Fletcher16)}
}

func (f *fletcher16) Calculate(data []byte) uint64 {
	return uint64(algo.Fletcher16(data))
}

func (f *fletcher16) Verify(data []byte, expected uint64) bool {
	return f.Calculate(data) == expected
}

func (f *fletcher16) Size() uint8 {
	return 2
}

func (f *fletcher16) Name() string {
	return f.name
}

type sum8 struct {
	name string
}

func NewSum8() *sum8 {
	return &sum8{name: string(Sum8)}
}

func (s *sum8) Calculate(data []byte) uint64 {
	return uint64(algo.SumOfBytes(data))
}

func (s *sum8) Verify(data []byte, expected uint64) bool {
	return s.Calculate(data) == expected
}

func (s *sum8) Size() uint8 {
	return 1
}

func (s *sum8) Name() string {
	return s.name
}

type sum8Carry struct {
	name string
}

func NewSum8Carry() *sum8Carry {
	return &sum8Carry{name: string(Sum8Carry)}
}

func (s *sum8Carry) Calculate(data []byte) uint64 {
	return uint64(algo.Sum8WithCarry(data))
}

func (s *sum8Carry) Verify(data []byte, expected uint64) bool {
	return s.Calculate(data) == expected
}

func (s *sum8Carry) Size() uint8 {
	return 1
}

func (s *sum8Carry) Name() string {
	return s.name
}

type sum16 struct {
	name string
}

func NewSum16() *sum16 {
	return &sum16{name: string(Sum16)}
}

func (s *sum16) Calculate(data []byte) uint64 {
	return uint64(algo.SumOfBytes16(data))
}

func (s *sum16) Verify(data []byte, expected uint64) bool {
	return s.Calculate(data) == expected
}

func (s *sum16) Size() uint8 {
	return 2
}

func (s *sum16) Name() string {
	return s.name
}
