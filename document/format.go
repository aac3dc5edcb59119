package document

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a structured payload format, identified by its MIME type.
type Format string

const (
	FormatJSON Format = "application/fhir+json"
	FormatXML  Format = "application/fhir+xml"
	FormatYAML Format = "application/yaml"
)

// ErrUnsupportedFormat is returned for formats that cannot be decoded
// into or encoded from a document.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat maps a MIME type or a short format name ("json", "yaml")
// to a Format. Parameters such as charset are ignored.
func ParseFormat(s string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(s))
	}
	switch mediaType {
	case string(FormatJSON), "application/json", "json":
		return FormatJSON, nil
	case string(FormatXML), "application/xml", "xml":
		return FormatXML, nil
	case string(FormatYAML), "application/x-yaml", "text/yaml", "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Decode reads one payload in the given format from r.
func Decode(r io.Reader, format Format) (Value, error) {
	switch format {
	case FormatJSON:
		return ParseReader(r)
	case FormatYAML:
		b, err := io.ReadAll(r)
		if err != nil {
			return Value{}, fmt.Errorf("read yaml: %w", err)
		}
		return ParseYAML(b)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v Value, format Format) error {
	switch format {
	case FormatJSON:
		b, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v.yamlNode()); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
