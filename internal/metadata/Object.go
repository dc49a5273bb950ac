package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/gruppe-adler/asc2json/internal/utils"
)

// Object is a JSON object that keeps the insertion order of its keys.
//
// Decoded values are *Object, []interface{}, json.Number, string, bool or nil.
// A key repeated in the input keeps its first position and takes its last value.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]interface{})}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Object returns the object stored under key, if there is one.
func (o *Object) Object(key string) (*Object, bool) {
	v, _ := o.Get(key)
	obj, ok := v.(*Object)
	return obj, ok
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value interface{}) *Object {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{keys: make([]string, len(o.keys)), values: make(map[string]interface{}, len(o.values))}
	copy(c.keys, o.keys)
	for k, v := range o.values {
		c.values[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case *Object:
		return v.Clone()
	case []interface{}:
		c := make([]interface{}, len(v))
		for i, e := range v {
			c[i] = cloneValue(e)
		}
		return c
	}
	return v
}

// MarshalJSON writes the keys in insertion order. Floats are written the
// same way as in the tabular outputs.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) encode(buf *bytes.Buffer) error {
	if o == nil {
		buf.WriteString("null")
		return nil
	}

	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, o.values[k]); err != nil {
			return fmt.Errorf("metadata: encoding %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v interface{}) error {
	switch v := v.(type) {
	case *Object:
		return v.encode(buf)
	case []interface{}:
		buf.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("unsupported value %v", v)
		}
		buf.WriteString(utils.FormatFloat(v))
		return nil
	case json.Number:
		buf.WriteString(v.String())
		return nil
	}

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// UnmarshalJSON decodes a JSON object keeping the order of its keys.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("metadata: expected a JSON object, got %v", tok)
	}

	obj, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

// decodeObject reads the members of an object whose opening brace has been consumed.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("metadata: expected an object key, got %v", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		arr := []interface{}{}
		for dec.More() {
			e, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, e)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("metadata: unexpected %v", delim)
}
