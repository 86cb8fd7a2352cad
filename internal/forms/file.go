package forms

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// FilePayload extracts the bare base64 payload from a data URL: everything
// after the first comma. Input without a comma is assumed to already be the
// bare payload; an empty selection yields an empty string.
func FilePayload(dataURL string) string {
	if dataURL == "" {
		return ""
	}
	if i := strings.Index(dataURL, ","); i >= 0 {
		return dataURL[i+1:]
	}
	return dataURL
}

// DecodeFilePayload checks that a stored file value is decodable base64 and
// returns the raw bytes.
func DecodeFilePayload(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty file payload")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("file payload is not valid base64: %w", err)
	}
	return raw, nil
}
