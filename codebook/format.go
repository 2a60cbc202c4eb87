package codebook

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/hupe1980/hkmeans/codec"
	"github.com/hupe1980/hkmeans/internal/hash"
)

// Format layout:
//
//	magic       [4]byte "HKCB"
//	version     uint8
//	compression uint8
//	codecLen    uint8
//	codec       [codecLen]byte
//	block       [uncompressed uint32][compressed uint32][data]
//	checksum    uint32 CRC32C of the uncompressed payload
const (
	magic   = "HKCB"
	version = 1
)

var (
	// ErrInvalidFormat is returned when data is not an encoded codebook.
	ErrInvalidFormat = errors.New("codebook: invalid format")
	// ErrUnsupportedVersion is returned for codebooks written by a newer format version.
	ErrUnsupportedVersion = errors.New("codebook: unsupported version")
	// ErrUnknownCodec is returned when the stored codec name is not known.
	ErrUnknownCodec = errors.New("codebook: unknown codec")
	// ErrCorrupt is returned when the payload fails integrity checks.
	ErrCorrupt = errors.New("codebook: corrupt data")
)

type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures encoding and decoding.
type Option func(*options)

// WithCodec selects the payload codec for Encode. Decode uses it when the
// stored codec name matches c.Name(), which allows custom codecs.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression selects the block compression for Encode.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(opts []Option) options {
	o := options{codec: codec.Default, compression: CompressionNone}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Encode serializes cb into the binary codebook format.
func Encode(cb *Codebook, opts ...Option) ([]byte, error) {
	if err := cb.validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	name := o.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return nil, fmt.Errorf("codebook: invalid codec name %q", name)
	}

	payload, err := o.codec.Marshal(cb)
	if err != nil {
		return nil, fmt.Errorf("codebook: marshal: %w", err)
	}
	block, err := compressBlock(payload, o.compression)
	if err != nil {
		return nil, fmt.Errorf("codebook: compress: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(magic) + 3 + len(name) + len(block) + 4)
	buf.WriteString(magic)
	buf.WriteByte(version)
	buf.WriteByte(byte(o.compression))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(block)
	buf.Write(binary.LittleEndian.AppendUint32(nil, hash.CRC32C(payload)))
	return buf.Bytes(), nil
}

// Decode parses a codebook produced by Encode.
func Decode(data []byte, opts ...Option) (*Codebook, error) {
	o := applyOptions(opts)

	if len(data) < len(magic)+3 || string(data[:len(magic)]) != magic {
		return nil, ErrInvalidFormat
	}
	data = data[len(magic):]

	if data[0] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[0])
	}
	compression := Compression(data[1])
	nameLen := int(data[2])
	data = data[3:]

	if len(data) < nameLen {
		return nil, ErrInvalidFormat
	}
	name := string(data[:nameLen])
	data = data[nameLen:]

	c, ok := codec.ByName(name)
	if o.codec.Name() == name {
		c, ok = o.codec, true
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload, n, err := decompressBlock(data, compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	data = data[n:]

	if len(data) != 4 {
		return nil, fmt.Errorf("%w: missing checksum", ErrCorrupt)
	}
	if binary.LittleEndian.Uint32(data) != hash.CRC32C(payload) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	var cb Codebook
	if err := c.Unmarshal(payload, &cb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := cb.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return &cb, nil
}

// Save encodes cb and writes it to store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, cb *Codebook, opts ...Option) error {
	data, err := Encode(cb, opts...)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("codebook: save %s: %w", name, err)
	}
	return nil
}

// Load reads and decodes the codebook stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*Codebook, error) {
	data, err := blobstore.Get(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("codebook: load %s: %w", name, err)
	}
	return Decode(data, opts...)
}
