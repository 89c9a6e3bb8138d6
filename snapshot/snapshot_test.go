package snapshot

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soavec/codec"
)

type rec struct {
	A int    `json:"a"`
	B string `json:"b"`
}

func writeStream(t *testing.T, records []rec, opts ...Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 2, uint64(len(records)), opts...)
	require.NoError(t, err)
	for _, r := range records {
		require.NoError(t, enc.Encode(r))
	}
	n, err := enc.Close()
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	records := []rec{{A: 1, B: "a"}, {A: 2, B: "b"}, {A: 3, B: "c"}}

	codecs := []codec.Codec{codec.JSON{}, codec.GoJSON{}}
	compressions := []Compression{CompressionNone, CompressionLZ4, CompressionZstd}

	for _, c := range codecs {
		for _, comp := range compressions {
			t.Run(c.Name()+"/"+comp.String(), func(t *testing.T) {
				data := writeStream(t, records, WithCodec(c), WithCompression(comp))

				dec, err := NewDecoder(bytes.NewReader(data))
				require.NoError(t, err)
				assert.Equal(t, 2, dec.Arity())
				assert.Equal(t, uint64(3), dec.Count())

				for _, want := range records {
					var got rec
					require.NoError(t, dec.Decode(&got))
					assert.Equal(t, want, got)
				}
				var extra rec
				assert.ErrorIs(t, dec.Decode(&extra), io.EOF)
			})
		}
	}
}

func TestCompressionShrinksRepetitivePayload(t *testing.T) {
	records := make([]rec, 512)
	for i := range records {
		records[i] = rec{A: 7, B: strings.Repeat("soa", 20)}
	}

	raw := writeStream(t, records)
	zstd := writeStream(t, records, WithCompression(CompressionZstd))
	lz4 := writeStream(t, records, WithCompression(CompressionLZ4))
	assert.Less(t, len(zstd), len(raw))
	assert.Less(t, len(lz4), len(raw))
}

func TestIncompressiblePayloadIsStoredRaw(t *testing.T) {
	// A tiny payload does not compress; the stream must round-trip anyway.
	records := []rec{{A: 42, B: "x"}}
	data := writeStream(t, records, WithCompression(CompressionLZ4))

	dec, err := NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	var got rec
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, records[0], got)
}

func TestEmptySnapshot(t *testing.T) {
	data := writeStream(t, nil)
	dec, err := NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), dec.Count())
	var got rec
	assert.ErrorIs(t, dec.Decode(&got), io.EOF)
}

func TestEncoderCountIsEnforced(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 2, 2)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(rec{A: 1}))

	// Closing one record short fails.
	_, err = enc.Close()
	require.Error(t, err)

	enc, err = NewEncoder(&buf, 2, 1)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(rec{A: 1}))
	assert.Error(t, enc.Encode(rec{A: 2}), "encoding past the declared count fails")
}

func TestEncoderRejectsBadArity(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewEncoder(&buf, 0, 0)
	assert.Error(t, err)
}

func TestDecoderRejectsBadMagic(t *testing.T) {
	data := writeStream(t, []rec{{A: 1, B: "a"}})
	binary.LittleEndian.PutUint32(data[0:4], 0xDEADBEEF)
	// The header checksum also no longer matches, but the magic is the
	// first thing checked after it.
	_, err := NewDecoder(bytes.NewReader(data))
	require.Error(t, err)
}

func TestDecoderDetectsCorruptPayload(t *testing.T) {
	data := writeStream(t, []rec{{A: 1, B: "a"}, {A: 2, B: "b"}})
	data[HeaderSize+3] ^= 0xFF
	_, err := NewDecoder(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestDecoderRejectsTruncatedStream(t *testing.T) {
	data := writeStream(t, []rec{{A: 1, B: "a"}})

	_, err := NewDecoder(bytes.NewReader(data[:HeaderSize-1]))
	assert.Error(t, err)

	_, err = NewDecoder(bytes.NewReader(data[:len(data)-2]))
	assert.Error(t, err)
}

// craftStream assembles a stream with an internally consistent header CRC
// and payload CRC but otherwise arbitrary header fields, the way a hostile
// writer could.
func craftStream(t *testing.T, h Header, stored []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	_, err := writeHeader(&buf, &h)
	require.NoError(t, err)
	buf.Write(stored)
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], crc32.ChecksumIEEE(stored))
	buf.Write(sum[:])
	return buf.Bytes()
}

func TestDecoderRejectsCountBeyondPayload(t *testing.T) {
	// Every record frame needs at least one payload byte, so any count
	// above the payload length is malformed, including counts whose int
	// conversion would go negative.
	h := Header{Magic: FormatMagic, Version: FormatVersion, Arity: 2, Count: 1 << 63}
	h.setCodec("json")

	_, err := NewDecoder(bytes.NewReader(craftStream(t, h, nil)))
	require.ErrorIs(t, err, ErrMalformed)

	h.Count = 1 << 40
	_, err = NewDecoder(bytes.NewReader(craftStream(t, h, nil)))
	require.ErrorIs(t, err, ErrMalformed)

	h.Count = 2
	h.PayloadSize = 1
	h.StoredSize = 1
	_, err = NewDecoder(bytes.NewReader(craftStream(t, h, []byte{0})))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecoderRejectsOversizedDeclaredSizes(t *testing.T) {
	// Declared sizes far beyond the actual stream must fail with a reported
	// error before anything of that size is allocated.
	h := Header{
		Magic:       FormatMagic,
		Version:     FormatVersion,
		Arity:       2,
		Count:       1,
		PayloadSize: 1 << 40,
		StoredSize:  1 << 40,
	}
	h.setCodec("json")
	_, err := NewDecoder(bytes.NewReader(craftStream(t, h, []byte("short"))))
	require.ErrorIs(t, err, ErrMalformed)

	// A plausible payload size with an absurd stored size fails on the
	// short stream instead.
	h.PayloadSize = 16
	_, err = NewDecoder(bytes.NewReader(craftStream(t, h, []byte("short"))))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMalformed)
}

func TestDecoderRejectsStoredSizeMismatch(t *testing.T) {
	// Uncompressed streams must store exactly the declared payload size.
	h := Header{
		Magic:       FormatMagic,
		Version:     FormatVersion,
		Arity:       2,
		Count:       0,
		PayloadSize: 3,
		StoredSize:  5,
	}
	h.setCodec("json")
	_, err := NewDecoder(bytes.NewReader(craftStream(t, h, []byte("hello"))))
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestHeaderValidate(t *testing.T) {
	h := Header{Magic: FormatMagic, Version: FormatVersion, Arity: 2}
	require.NoError(t, h.Validate())

	bad := h
	bad.Magic = 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMagic)

	bad = h
	bad.Version = FormatVersion + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidVersion)
}

func TestWithLogger(t *testing.T) {
	var log bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&log, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := writeStream(t, []rec{{A: 1, B: "a"}}, WithLogger(logger))
	assert.Contains(t, log.String(), "snapshot written")

	_, err := NewDecoder(bytes.NewReader(data), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, log.String(), "snapshot read")
}
