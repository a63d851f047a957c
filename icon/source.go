package icon

import (
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Source supplies the keys of a single icon set.
type Source interface {
	// Prefix identifies the icon set, e.g. "mdi".
	Prefix() string
	// Keys returns icon keys in the order the set defines them.
	Keys() ([]string, error)
}

// IconifySource reads keys from an Iconify JSON icon-set document
// ({"prefix": "mdi", "icons": {"home": {...}, ...}}). Only the prefix and the
// keys of the icons object are consumed.
type IconifySource struct {
	prefix string
	data   []byte
}

// NewIconifySource wraps an Iconify document. A non-empty prefix overrides the
// one declared by the document.
func NewIconifySource(prefix string, data []byte) *IconifySource {
	return &IconifySource{prefix: prefix, data: data}
}

func (s *IconifySource) Prefix() string {
	if s.prefix != "" {
		return s.prefix
	}
	return gjson.GetBytes(s.data, "prefix").String()
}

// Keys walks the icons object in document order. A repeated key is reported
// once, at the position of its first occurrence.
func (s *IconifySource) Keys() ([]string, error) {
	prefix := s.Prefix()
	if !gjson.ValidBytes(s.data) {
		return nil, &MalformedSourceError{Prefix: prefix, Reason: "invalid JSON document"}
	}
	if prefix == "" {
		return nil, &MalformedSourceError{Reason: "missing prefix"}
	}
	icons := gjson.GetBytes(s.data, "icons")
	if !icons.Exists() {
		return nil, &MalformedSourceError{Prefix: prefix, Reason: "missing icons collection"}
	}
	if !icons.IsObject() {
		return nil, &MalformedSourceError{Prefix: prefix, Reason: "icons collection is not an object"}
	}
	keys := make([]string, 0)
	icons.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return lo.Uniq(keys), nil
}
