package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/view"
)

// jsonAttribute converts a JSON scalar to an attribute: strings become
// String, booleans Bool, numbers their decimal text and null Option(None).
func jsonAttribute(cx *reactive.Scope, raw []byte) (attr.Attribute, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return attr.Attribute{}, errors.New("E400").
			WithDetail(fmt.Sprintf("invalid JSON %q", raw)).
			Wrap(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return attr.Attribute{}, errors.New("E400").
			WithDetail(fmt.Sprintf("unexpected input after the value in %q", raw))
	}

	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return attr.Number(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return attr.Attribute{}, errors.New("E400").WithDetail("number out of range: " + v.String())
		}
		return attr.Into(cx, f), nil
	case nil, string, bool:
		return attr.Into(cx, v), nil
	default:
		return attr.Attribute{}, errors.New("E400").
			WithDetail(fmt.Sprintf("attribute values must be strings, numbers, booleans or null, got %T", v))
	}
}

// decodeAttributes reads a JSON object of attributes, keeping the order of
// its keys.
func decodeAttributes(cx *reactive.Scope, r io.Reader) ([]view.AttrSpec, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.New("E400").WithDetail("reading attributes").Wrap(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("E400").WithDetail("attributes must be a JSON object")
	}

	var specs []view.AttrSpec
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.New("E400").WithDetail("reading attributes").Wrap(err)
		}
		name := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.New("E400").WithDetail("reading attribute " + name).Wrap(err)
		}
		a, err := jsonAttribute(cx, raw)
		if err != nil {
			return nil, err
		}
		specs = append(specs, view.Attr(name, a))
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.New("E400").WithDetail("reading attributes").Wrap(err)
	}
	return specs, nil
}
