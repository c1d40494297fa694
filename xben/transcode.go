package xben

import (
	"io"

	"github.com/ulikunitz/xz"

	"github.com/mggg/ben/ben"
)

// TranscodeFromBEN reads a complete BEN stream from r and writes it to w as
// an XBEN stream, the direct BEN→XBEN path described in §10 of the expanded
// spec and modeled on XBenEncoder::write_ben_file in the original
// implementation. variant governs the XBEN output and need not match the
// variant declared by the BEN input's banner — transcoding from a Standard
// BEN file into an XBEN MkvChain file (or vice versa) is valid, it just
// forgoes whatever deduplication the source already had.
func TranscodeFromBEN(r io.Reader, w io.Writer, variant ben.Variant) error {
	br, err := ben.NewReader(r, nil)
	if err != nil {
		return err
	}
	xw, err := NewWriter(w, variant, nil)
	if err != nil {
		return err
	}
	for {
		rec, ok, err := br.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for i := uint16(0); i < rec.Count; i++ {
			if err := xw.WriteAssignment(rec.Assignment); err != nil {
				return err
			}
		}
	}
	return xw.Close()
}

// CompressRaw applies level-9-equivalent LZMA2 compression to an arbitrary
// byte stream with no BEN/ben32 framing, mirroring the original
// implementation's xz_compress and backing `cmd/ben xz-compress`.
func CompressRaw(r io.Reader, w io.Writer) error {
	cfg := xz.WriterConfig{DictCap: dictCap}
	zw, err := cfg.NewWriter(w)
	if err != nil {
		return &CompressionError{Err: err}
	}
	if _, err := io.Copy(zw, r); err != nil {
		zw.Close()
		return &CompressionError{Err: err}
	}
	if err := zw.Close(); err != nil {
		return &CompressionError{Err: err}
	}
	return nil
}

// DecompressRaw reverses CompressRaw, mirroring xz_decompress.
func DecompressRaw(r io.Reader, w io.Writer) error {
	zr, err := xz.NewReader(r)
	if err != nil {
		return &CompressionError{Err: err}
	}
	if _, err := io.Copy(w, zr); err != nil {
		return &CompressionError{Err: err}
	}
	return nil
}
