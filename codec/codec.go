// Package codec centralizes JSON encoding for jsonfile.
//
// A Store never inspects the bytes a codec produces. It hands the encoded text to
// the filesystem or blob store as-is and treats any Unmarshal error as a decode
// failure, so switching codecs changes speed and edge-case behavior but not the
// on-disk format: every built-in codec writes plain JSON.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	// MarshalIndent is like Marshal but applies prefix and indent to each
	// line, following encoding/json.MarshalIndent.
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "jsoniter":
		return Jsoniter{}, true
	default:
		return nil, false
	}
}

// Names returns the names of all built-in codecs.
func Names() []string {
	return []string{"json", "go-json", "jsoniter"}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
