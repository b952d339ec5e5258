// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package challenge

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// KeyChunkKeyword is the text chunk keyword holding the signing key.
const KeyChunkKeyword = "ctf_key"

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

const (
	chunkText           = "tEXt"
	chunkCompressedText = "zTXt"
	chunkIntlText       = "iTXt"
	chunkEnd            = "IEND"

	// maxChunkLength bounds a single chunk read; logos are small.
	maxChunkLength = 16 << 20
)

// ReadTextChunk scans the PNG in r for a tEXt, zTXt or iTXt chunk whose
// keyword equals keyword and returns its decoded text. The boolean is false
// when no such chunk exists before IEND.
func ReadTextChunk(r io.Reader, keyword string) (string, bool, error) {
	br := bufio.NewReader(r)

	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(br, sig); err != nil || !bytes.Equal(sig, pngSignature) {
		return "", false, ErrNotPNG
	}

	var header [8]byte
	for {
		if _, err := io.ReadFull(br, header[:]); err != nil {
			if err == io.EOF {
				return "", false, nil
			}
			return "", false, fmt.Errorf("%w: %w", ErrCorruptPNG, err)
		}

		length := binary.BigEndian.Uint32(header[:4])
		typ := string(header[4:8])
		if length > maxChunkLength {
			return "", false, fmt.Errorf("%w: %s chunk of %d bytes", ErrCorruptPNG, typ, length)
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(br, data); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrCorruptPNG, err)
		}

		var crc [4]byte
		if _, err := io.ReadFull(br, crc[:]); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrCorruptPNG, err)
		}
		sum := crc32.NewIEEE()
		sum.Write(header[4:8])
		sum.Write(data)
		if sum.Sum32() != binary.BigEndian.Uint32(crc[:]) {
			return "", false, fmt.Errorf("%w: bad CRC in %s chunk", ErrCorruptPNG, typ)
		}

		switch typ {
		case chunkText, chunkCompressedText, chunkIntlText:
			key, text, err := decodeTextChunk(typ, data)
			if err != nil {
				return "", false, err
			}
			if key == keyword {
				return text, true, nil
			}
		case chunkEnd:
			return "", false, nil
		}
	}
}

// decodeTextChunk returns the keyword and text of a textual chunk.
//
//	tEXt: keyword 0 text
//	zTXt: keyword 0 method zlib(text)
//	iTXt: keyword 0 flag method lang 0 translated 0 text-or-zlib(text)
func decodeTextChunk(typ string, data []byte) (string, string, error) {
	keyword, rest, ok := bytes.Cut(data, []byte{0})
	if !ok {
		return "", "", fmt.Errorf("%w: %s chunk without keyword separator", ErrCorruptPNG, typ)
	}

	switch typ {
	case chunkText:
		return latin1(keyword), latin1(rest), nil
	case chunkCompressedText:
		if len(rest) < 1 {
			return "", "", fmt.Errorf("%w: short zTXt chunk", ErrCorruptPNG)
		}
		text, err := inflate(rest[1:])
		if err != nil {
			return "", "", err
		}
		return latin1(keyword), latin1(text), nil
	default:
		if len(rest) < 2 {
			return "", "", fmt.Errorf("%w: short iTXt chunk", ErrCorruptPNG)
		}
		compressed := rest[0] == 1
		rest = rest[2:]

		// language tag and translated keyword
		for range 2 {
			var found bool
			if _, rest, found = bytes.Cut(rest, []byte{0}); !found {
				return "", "", fmt.Errorf("%w: truncated iTXt chunk", ErrCorruptPNG)
			}
		}

		if compressed {
			text, err := inflate(rest)
			if err != nil {
				return "", "", err
			}
			return latin1(keyword), string(text), nil
		}
		return latin1(keyword), string(rest), nil
	}
}

func inflate(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPNG, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxChunkLength))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPNG, err)
	}
	return out, nil
}

// latin1 decodes ISO-8859-1 bytes, the encoding of tEXt and zTXt.
func latin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// KeyFromFile reads the signing key from the PNG at path.
func KeyFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening logo: %w", err)
	}
	defer f.Close()

	key, ok, err := ReadTextChunk(f, KeyChunkKeyword)
	if err != nil {
		return "", err
	}
	if !ok || key == "" {
		return "", ErrNoKey
	}
	return key, nil
}
