package snapshot

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
)

const (
	// FormatMagic identifies soavec snapshot streams (ASCII: "SOA0").
	FormatMagic uint32 = 0x534F4130

	// FormatVersion is the current snapshot format version.
	FormatVersion uint32 = 1

	// HeaderSize is the size of the stream header in bytes.
	HeaderSize = 64

	// maxPayloadSize caps the uncompressed payload size a decoder accepts.
	// The header checksum guards against corruption, not against a crafted
	// stream, so the declared sizes stay untrusted until bounded: without a
	// ceiling a 68-byte stream could declare a multi-terabyte payload and
	// drive a fatal allocation instead of a reported error.
	maxPayloadSize = 1 << 30

	// codecNameSize is the fixed width of the codec name field.
	codecNameSize = 16
)

var (
	// ErrInvalidMagic is returned when a stream has an invalid magic number.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")

	// ErrInvalidVersion is returned when a stream has an unsupported version.
	ErrInvalidVersion = errors.New("snapshot: unsupported format version")

	// ErrCorrupted is returned when a stream fails checksum validation.
	ErrCorrupted = errors.New("snapshot: stream corrupted (checksum mismatch)")

	// ErrUnknownCodec is returned when the codec named in the header is not
	// registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")

	// ErrArityMismatch is returned when a snapshot's record arity does not
	// match the container it is being read into.
	ErrArityMismatch = errors.New("snapshot: record arity mismatch")

	// ErrMalformed is returned when a record frame cannot be decoded.
	ErrMalformed = errors.New("snapshot: malformed record frame")
)

// Header is the 64-byte header at the start of snapshot streams.
//
// All multi-byte fields are little-endian. The payload that follows is
// Count length-prefixed record frames, optionally compressed as a whole,
// terminated by a CRC32 of the stored payload bytes.
type Header struct {
	Magic       uint32           // 0x534F4130 ("SOA0")
	Version     uint32           // Format version (currently 1)
	Flags       uint32           // Feature flags (none defined yet)
	Arity       uint32           // Fields per record
	Count       uint64           // Number of records
	PayloadSize uint64           // Uncompressed payload size in bytes
	StoredSize  uint64           // On-wire payload size (== PayloadSize when uncompressed)
	CodecName   [codecNameSize]byte // NUL-padded codec name
	Compression Compression      // Payload compression actually applied
	Reserved    [3]byte          // Padding
	Checksum    uint32           // CRC32 of the first 60 header bytes
}

// Validate checks magic and version.
func (h *Header) Validate() error {
	if h.Magic != FormatMagic {
		return ErrInvalidMagic
	}
	if h.Version > FormatVersion {
		return ErrInvalidVersion
	}
	return nil
}

// Codec returns the codec name with NUL padding stripped.
func (h *Header) Codec() string {
	name := h.CodecName[:]
	for i, b := range name {
		if b == 0 {
			return string(name[:i])
		}
	}
	return string(name)
}

func (h *Header) setCodec(name string) {
	copy(h.CodecName[:], name)
}

func (h *Header) marshal() [HeaderSize]byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	binary.LittleEndian.PutUint32(buf[8:], h.Flags)
	binary.LittleEndian.PutUint32(buf[12:], h.Arity)
	binary.LittleEndian.PutUint64(buf[16:], h.Count)
	binary.LittleEndian.PutUint64(buf[24:], h.PayloadSize)
	binary.LittleEndian.PutUint64(buf[32:], h.StoredSize)
	copy(buf[40:56], h.CodecName[:])
	buf[56] = byte(h.Compression)
	copy(buf[57:60], h.Reserved[:])
	h.Checksum = crc32.ChecksumIEEE(buf[:60])
	binary.LittleEndian.PutUint32(buf[60:], h.Checksum)
	return buf
}

func (h *Header) unmarshal(buf [HeaderSize]byte) error {
	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	h.Version = binary.LittleEndian.Uint32(buf[4:])
	h.Flags = binary.LittleEndian.Uint32(buf[8:])
	h.Arity = binary.LittleEndian.Uint32(buf[12:])
	h.Count = binary.LittleEndian.Uint64(buf[16:])
	h.PayloadSize = binary.LittleEndian.Uint64(buf[24:])
	h.StoredSize = binary.LittleEndian.Uint64(buf[32:])
	copy(h.CodecName[:], buf[40:56])
	h.Compression = Compression(buf[56])
	copy(h.Reserved[:], buf[57:60])
	h.Checksum = binary.LittleEndian.Uint32(buf[60:])
	if crc32.ChecksumIEEE(buf[:60]) != h.Checksum {
		return ErrCorrupted
	}
	return h.Validate()
}

func writeHeader(w io.Writer, h *Header) (int, error) {
	buf := h.marshal()
	return w.Write(buf[:])
}

func readHeader(r io.Reader, h *Header) (int, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return n, err
	}
	return n, h.unmarshal(buf)
}
