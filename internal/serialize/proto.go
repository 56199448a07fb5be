package serialize

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/iamNilotpal/integrity/internal/core/domain"
)

// Manifest wire format field numbers. The layout is a hand-rolled protobuf
// message so manifests stay readable by standard proto tooling:
//
//	message Manifest {
//	  string run_id       = 1;
//	  int64  created_unix = 2;
//	  string algorithm    = 3;
//	  repeated Entry entries = 4;
//	}
//
//	message Entry {
//	  string  path     = 1;
//	  uint64  size     = 2;
//	  fixed64 checksum = 3;
//	}
const (
	manifestFieldRunID     protowire.Number = 1
	manifestFieldCreated   protowire.Number = 2
	manifestFieldAlgorithm protowire.Number = 3
	manifestFieldEntry     protowire.Number = 4

	entryFieldPath     protowire.Number = 1
	entryFieldSize     protowire.Number = 2
	entryFieldChecksum protowire.Number = 3
)

// MarshalManifest encodes a manifest into its protobuf wire form.
// Entries are written in slice order, so callers that need deterministic
// output must sort them first.
func MarshalManifest(m *domain.Manifest) []byte {
	var buf []byte

	buf = protowire.AppendTag(buf, manifestFieldRunID, protowire.BytesType)
	buf = protowire.AppendString(buf, m.RunID)

	buf = protowire.AppendTag(buf, manifestFieldCreated, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(m.CreatedUnix))

	buf = protowire.AppendTag(buf, manifestFieldAlgorithm, protowire.BytesType)
	buf = protowire.AppendString(buf, m.Algorithm)

	for i := range m.Entries {
		buf = appendEntry(buf, &m.Entries[i])
	}

	return buf
}

func appendEntry(buf []byte, e *domain.ManifestEntry) []byte {
	var msg []byte

	msg = protowire.AppendTag(msg, entryFieldPath, protowire.BytesType)
	msg = protowire.AppendString(msg, e.Path)

	msg = protowire.AppendTag(msg, entryFieldSize, protowire.VarintType)
	msg = protowire.AppendVarint(msg, e.Size)

	msg = protowire.AppendTag(msg, entryFieldChecksum, protowire.Fixed64Type)
	msg = protowire.AppendFixed64(msg, e.Checksum)

	buf = protowire.AppendTag(buf, manifestFieldEntry, protowire.BytesType)
	return protowire.AppendBytes(buf, msg)
}

// UnMarshalManifest decodes a manifest from its protobuf wire form.
// Unknown fields are skipped so newer manifests stay readable by older
// binaries. Any malformed input fails with domain.ErrCorruptManifest.
func UnMarshalManifest(data []byte) (*domain.Manifest, error) {
	var m domain.Manifest

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, corruptErr(n)
		}
		data = data[n:]

		switch {
		case num == manifestFieldRunID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, corruptErr(n)
			}
			m.RunID = v
			data = data[n:]

		case num == manifestFieldCreated && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, corruptErr(n)
			}
			m.CreatedUnix = int64(v)
			data = data[n:]

		case num == manifestFieldAlgorithm && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, corruptErr(n)
			}
			m.Algorithm = v
			data = data[n:]

		case num == manifestFieldEntry && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, corruptErr(n)
			}
			entry, err := unMarshalEntry(v)
			if err != nil {
				return nil, err
			}
			m.Entries = append(m.Entries, entry)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, corruptErr(n)
			}
			data = data[n:]
		}
	}

	return &m, nil
}

func unMarshalEntry(data []byte) (domain.ManifestEntry, error) {
	var e domain.ManifestEntry

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return e, corruptErr(n)
		}
		data = data[n:]

		switch {
		case num == entryFieldPath && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return e, corruptErr(n)
			}
			e.Path = v
			data = data[n:]

		case num == entryFieldSize && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return e, corruptErr(n)
			}
			e.Size = v
			data = data[n:]

		case num == entryFieldChecksum && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return e, corruptErr(n)
			}
			e.Checksum = v
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return e, corruptErr(n)
			}
			data = data[n:]
		}
	}

	return e, nil
}

func corruptErr(n int) error {
	return fmt.Errorf("%w: %v", domain.ErrCorruptManifest, protowire.ParseError(n))
}
