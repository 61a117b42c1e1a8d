package filesystem

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
)

func (f *Handler) encodingOrDefault(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return f.defaultEncoding
	}

	return enc
}

func decode(op string, enc encoding.Encoding, data []byte) (string, error) {
	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("(fs-%s) failed to decode: %w", op, err)
	}

	return string(text), nil
}

// encode converts text into enc, replacing characters enc cannot represent.
func encode(op string, enc encoding.Encoding, text string) ([]byte, error) {
	data, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("(fs-%s) failed to encode: %w", op, err)
	}

	return data, nil
}

// splitLines splits text read from a long path. A single carriage return
// anywhere in the text makes "\r\n" the line separator for all of it, next to
// a bare "\n"; otherwise only "\n" separates. A bare "\r" never separates.
func splitLines(text string) []string {
	if strings.Contains(text, "\r") {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	return strings.Split(text, "\n")
}
