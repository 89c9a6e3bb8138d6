// Package snapshot implements the serialization contract of soavec
// containers: records are written index 0..len in order, one encoded record
// per element, and read back as an ordered sequence that the container
// appends through its normal push path.
//
// The stream is self-describing. A fixed 64-byte header carries the record
// arity, record count, codec name and compression; the payload is the
// length-prefixed record frames, optionally compressed as a whole; a CRC32
// of the stored payload terminates the stream. The medium is any
// io.Writer/io.Reader - this package never touches the filesystem.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"

	"github.com/hupe1980/soavec/codec"
)

type config struct {
	codec       codec.Codec
	compression Compression
	logger      *slog.Logger
}

// Option configures snapshot encoding/decoding behavior.
type Option func(*config)

// WithCodec configures the record codec. If nil is passed, codec.Default is
// used. Decoders ignore this option: the codec named in the stream header is
// authoritative.
func WithCodec(c codec.Codec) Option {
	return func(o *config) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures whole-payload compression for encoding.
func WithCompression(c Compression) Option {
	return func(o *config) {
		o.compression = c
	}
}

// WithLogger configures structured logging of snapshot statistics.
// The default discards all logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *config) {
		if l != nil {
			o.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Encoder writes one snapshot stream: a fixed number of records declared up
// front, encoded one at a time, then flushed as a single framed payload by
// Close.
type Encoder struct {
	w       io.Writer
	cfg     config
	arity   uint32
	count   uint64
	encoded uint64
	buf     bytes.Buffer
	scratch [binary.MaxVarintLen64]byte
	closed  bool
}

// NewEncoder starts a snapshot of count records of the given arity.
func NewEncoder(w io.Writer, arity int, count uint64, opts ...Option) (*Encoder, error) {
	if arity <= 0 {
		return nil, fmt.Errorf("snapshot: invalid arity: %d", arity)
	}
	return &Encoder{
		w:     w,
		cfg:   newConfig(opts),
		arity: uint32(arity),
		count: count,
	}, nil
}

// Encode appends one record frame to the payload. Records must be encoded
// in index order; Close fails unless exactly the declared count was encoded.
func (e *Encoder) Encode(v any) error {
	if e.closed {
		return fmt.Errorf("snapshot: encoder already closed")
	}
	if e.encoded >= e.count {
		return fmt.Errorf("snapshot: encoded more than the declared %d records", e.count)
	}
	b, err := e.cfg.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("snapshot: encode record %d: %w", e.encoded, err)
	}
	n := binary.PutUvarint(e.scratch[:], uint64(len(b)))
	e.buf.Write(e.scratch[:n])
	e.buf.Write(b)
	e.encoded++
	return nil
}

// Close compresses the payload, writes header, payload and trailing
// checksum, and returns the total bytes written.
func (e *Encoder) Close() (int64, error) {
	if e.closed {
		return 0, fmt.Errorf("snapshot: encoder already closed")
	}
	e.closed = true
	if e.encoded != e.count {
		return 0, fmt.Errorf("snapshot: encoded %d records, declared %d", e.encoded, e.count)
	}

	payload := e.buf.Bytes()
	stored, applied, err := compressPayload(payload, e.cfg.compression)
	if err != nil {
		return 0, err
	}

	h := Header{
		Magic:       FormatMagic,
		Version:     FormatVersion,
		Arity:       e.arity,
		Count:       e.count,
		PayloadSize: uint64(len(payload)),
		StoredSize:  uint64(len(stored)),
		Compression: applied,
	}
	h.setCodec(e.cfg.codec.Name())

	var written int64
	n, err := writeHeader(e.w, &h)
	written += int64(n)
	if err != nil {
		return written, err
	}

	n, err = e.w.Write(stored)
	written += int64(n)
	if err != nil {
		return written, err
	}

	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], crc32.ChecksumIEEE(stored))
	n, err = e.w.Write(sum[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	e.cfg.logger.Debug("snapshot written",
		slog.Uint64("records", e.count),
		slog.Int("payload_bytes", len(payload)),
		slog.Int("stored_bytes", len(stored)),
		slog.String("codec", e.cfg.codec.Name()),
		slog.String("compression", applied.String()),
	)
	return written, nil
}

// Decoder reads one snapshot stream, validating checksums up front and
// handing out record frames in index order.
type Decoder struct {
	h       Header
	c       codec.Codec
	payload []byte
	off     int
	decoded uint64
}

// NewDecoder reads and validates the header, payload and checksum from r.
// The codec is selected by the name recorded in the stream.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := newConfig(opts)

	d := &Decoder{}
	if _, err := readHeader(r, &d.h); err != nil {
		return nil, err
	}

	if d.h.PayloadSize > maxPayloadSize {
		return nil, fmt.Errorf("%w: declared payload size %d exceeds limit", ErrMalformed, d.h.PayloadSize)
	}

	// Read the stored payload incrementally instead of allocating
	// StoredSize up front; a short stream then fails after reading what is
	// actually there, no matter what size the header claims.
	var storedBuf bytes.Buffer
	n, err := storedBuf.ReadFrom(io.LimitReader(r, int64(d.h.StoredSize)))
	if err != nil {
		return nil, fmt.Errorf("snapshot: short payload: %w", err)
	}
	if uint64(n) != d.h.StoredSize {
		return nil, fmt.Errorf("snapshot: short payload: %w", io.ErrUnexpectedEOF)
	}
	stored := storedBuf.Bytes()
	var sum [4]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return nil, fmt.Errorf("snapshot: missing checksum: %w", err)
	}
	if binary.LittleEndian.Uint32(sum[:]) != crc32.ChecksumIEEE(stored) {
		return nil, ErrCorrupted
	}

	payload, err := decompressPayload(stored, d.h.Compression, d.h.PayloadSize)
	if err != nil {
		return nil, err
	}
	d.payload = payload

	// Every record frame occupies at least one payload byte, so the
	// declared count can never exceed the payload length. This also keeps
	// the count safely within int range for callers that pre-reserve.
	if d.h.Count > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d records declared for a %d byte payload", ErrMalformed, d.h.Count, len(payload))
	}

	c, ok := codec.ByName(d.h.Codec())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, d.h.Codec())
	}
	d.c = c

	cfg.logger.Debug("snapshot read",
		slog.Uint64("records", d.h.Count),
		slog.Int("payload_bytes", len(payload)),
		slog.String("codec", d.h.Codec()),
		slog.String("compression", d.h.Compression.String()),
	)
	return d, nil
}

// Arity returns the record arity recorded in the header.
func (d *Decoder) Arity() int {
	return int(d.h.Arity)
}

// Count returns the record count recorded in the header.
func (d *Decoder) Count() uint64 {
	return d.h.Count
}

// Decode reads the next record frame into v. It returns io.EOF after the
// declared count of records has been decoded.
func (d *Decoder) Decode(v any) error {
	if d.decoded >= d.h.Count {
		return io.EOF
	}
	size, n := binary.Uvarint(d.payload[d.off:])
	if n <= 0 {
		return fmt.Errorf("%w: bad frame length at record %d", ErrMalformed, d.decoded)
	}
	start := d.off + n
	end := start + int(size)
	if end < start || end > len(d.payload) {
		return fmt.Errorf("%w: frame at record %d extends past payload", ErrMalformed, d.decoded)
	}
	if err := d.c.Unmarshal(d.payload[start:end], v); err != nil {
		return fmt.Errorf("%w: record %d: %w", ErrMalformed, d.decoded, err)
	}
	d.off = end
	d.decoded++
	return nil
}
