package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
)

// ReadAllBytes reads the whole content of a file.
func (f *Handler) ReadAllBytes(path string) ([]byte, error) {
	if !IsLongPath(path) {
		data, err := f.osHandler.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-read) %w", err)
		}

		return data, nil
	}

	return f.readExtended("read", path)
}

// ReadAllText reads the whole content of a file as text in enc, or in the
// default encoding if enc is nil.
func (f *Handler) ReadAllText(path string, enc encoding.Encoding) (string, error) {
	data, err := f.ReadAllBytes(path)
	if err != nil {
		return "", err
	}

	return decode("read", f.encodingOrDefault(enc), data)
}

// ReadAllLines reads the lines of a file as text in enc, or in the default
// encoding if enc is nil.
//
// Short paths follow [bufio.ScanLines]: a line ends at "\n" with an optional
// preceding "\r" and a final empty line is dropped. A bare "\r" does not end
// a line, unlike the .NET File.ReadAllLines routine. Long paths split the text
// as described for [splitLines], keeping a final empty line.
func (f *Handler) ReadAllLines(path string, enc encoding.Encoding) ([]string, error) {
	text, err := f.ReadAllText(path, enc)
	if err != nil {
		return nil, err
	}

	if IsLongPath(path) {
		return splitLines(text), nil
	}

	lines := []string{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(text)+1, bufio.MaxScanTokenSize))

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("(fs-read) failed to scan lines: %w", err)
	}

	return lines, nil
}

// WriteAllBytes creates or truncates a file and writes data to it.
func (f *Handler) WriteAllBytes(path string, data []byte) error {
	if !IsLongPath(path) {
		if err := f.osHandler.WriteFile(path, data, 0o666); err != nil { //nolint:mnd
			return fmt.Errorf("(fs-write) %w", err)
		}

		return nil
	}

	p, err := f.extended("write", path)
	if err != nil {
		return err
	}

	h, err := f.openWrite("write", p)
	if err != nil {
		return err
	}
	defer h.Close()

	if _, err := h.Write(data); err != nil {
		return raise("write", p, err)
	}

	return nil
}

// WriteAllText creates or truncates a file and writes contents to it in enc,
// or in the default encoding if enc is nil.
func (f *Handler) WriteAllText(path string, contents string, enc encoding.Encoding) error {
	data, err := encode("write", f.encodingOrDefault(enc), contents)
	if err != nil {
		return err
	}

	return f.WriteAllBytes(path, data)
}

// AppendAllText appends contents in enc, or in the default encoding if enc is
// nil, to a file, creating the file if it does not exist.
func (f *Handler) AppendAllText(path string, contents string, enc encoding.Encoding) error {
	data, err := encode("append", f.encodingOrDefault(enc), contents)
	if err != nil {
		return err
	}

	if !IsLongPath(path) {
		file, err := f.osHandler.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o666) //nolint:mnd
		if err != nil {
			return fmt.Errorf("(fs-append) %w", err)
		}
		defer file.Close()

		if _, err := file.Write(data); err != nil {
			return fmt.Errorf("(fs-append) %w", err)
		}

		return nil
	}

	p, err := f.extended("append", path)
	if err != nil {
		return err
	}

	h, err := f.openAppend("append", p)
	if err != nil {
		return err
	}
	defer h.Close()

	if _, err := h.Seek(0, io.SeekEnd); err != nil {
		return raise("append", p, err)
	}

	if _, err := h.Write(data); err != nil {
		return raise("append", p, err)
	}

	return nil
}

func (f *Handler) readExtended(op string, path string) ([]byte, error) {
	p, err := f.extended(op, path)
	if err != nil {
		return nil, err
	}

	h, err := f.openRead(op, p)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	data, err := io.ReadAll(h)
	if err := raise(op, p, err); err != nil {
		return nil, err
	}

	return data, nil
}
