package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the whole-payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses zstd (better ratio, still fast).
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// zstd encoder/decoder pools; EncodeAll/DecodeAll reuse their scratch state.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		// The options are fixed and valid; NewWriter cannot fail on them.
		panic(fmt.Sprintf("snapshot: zstd writer init: %v", err))
	}
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayloadSize))
	if err != nil {
		// The options are fixed and valid; NewReader cannot fail on them.
		panic(fmt.Sprintf("snapshot: zstd reader init: %v", err))
	}
	return dec
}

// compressPayload compresses the payload with the requested algorithm and
// returns the stored bytes plus the compression actually applied. When
// compression does not help (ratio > 0.9) the payload is stored raw.
func compressPayload(payload []byte, want Compression) ([]byte, Compression, error) {
	if want == CompressionNone || len(payload) == 0 {
		return payload, CompressionNone, nil
	}

	var compressed []byte
	switch want {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return nil, CompressionNone, err
		}
		if n == 0 {
			// Incompressible.
			return payload, CompressionNone, nil
		}
		compressed = buf[:n]
	case CompressionZstd:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(payload, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, CompressionNone, fmt.Errorf("snapshot: unsupported compression: %d", uint8(want))
	}

	if float64(len(compressed)) > float64(len(payload))*0.9 {
		return payload, CompressionNone, nil
	}
	return compressed, want, nil
}

// decompressPayload reverses compressPayload given the header's sizes.
func decompressPayload(stored []byte, c Compression, payloadSize uint64) ([]byte, error) {
	switch c {
	case CompressionNone:
		if uint64(len(stored)) != payloadSize {
			return nil, fmt.Errorf("%w: stored/declared size mismatch", ErrCorrupted)
		}
		return stored, nil
	case CompressionLZ4:
		payload := make([]byte, payloadSize)
		n, err := lz4.UncompressBlock(stored, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
		if uint64(n) != payloadSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupted)
		}
		return payload, nil
	case CompressionZstd:
		dec := getZstdDecoder()
		payload, err := dec.DecodeAll(stored, make([]byte, 0, payloadSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
		if uint64(len(payload)) != payloadSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupted)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("snapshot: unsupported compression: %d", uint8(c))
	}
}
