package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
)

// FileField names one file to submit as a multipart part.
type FileField struct {
	// Name is the multipart field name, e.g. "logo" or "filedata".
	Name string
	// Path is the file to open and stream into the part.
	Path string
}

// encodeMultipart packs form fields and files into a multipart body and
// returns it with the boundary-bearing content type. The body is fully
// buffered in memory, so peak usage grows with the combined file sizes.
// Every file handle opened here is closed before return, whether
// packing succeeds or not.
func encodeMultipart(form url.Values, files []FileField) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, values := range form {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				_ = writer.Close()

				return nil, "", fmt.Errorf("writing field %q: %w", key, err)
			}
		}
	}

	for _, file := range files {
		if err := writeFilePart(writer, file); err != nil {
			_ = writer.Close()

			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

// writeFilePart copies one file into the multipart writer. The handle
// is released on every exit path.
func writeFilePart(writer *multipart.Writer, file FileField) error {
	handle, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer handle.Close()

	part, err := writer.CreateFormFile(file.Name, filepath.Base(file.Path))
	if err != nil {
		return fmt.Errorf("creating part %q: %w", file.Name, err)
	}

	if _, err := io.Copy(part, handle); err != nil {
		return fmt.Errorf("copying %s: %w", file.Path, err)
	}

	return nil
}
