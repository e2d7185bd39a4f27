package document

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText returns data as UTF-8 text. A leading UTF-8 or UTF-16 byte
// order mark is honoured and stripped; data without a BOM is read as UTF-8.
func DecodeText(data []byte) ([]byte, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	return decoded, nil
}

// Unmarshal decodes JSON data into v after DecodeText.
func Unmarshal(data []byte, v any) error {
	text, err := DecodeText(data)
	if err != nil {
		return err
	}

	return json.Unmarshal(text, v)
}
