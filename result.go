package satchel

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrResultCouldNotBeUnmarshalled = errors.New("result could not be unmarshalled into the destination")
var ErrResultPathInvalid = errors.New("result path is invalid")

// Result wraps a fetched payload and exposes path reads on it.
type Result struct {
	url string
	b   []byte
}

func newResult(url string) (*Result, error) {
	b, err := json.Marshal(M{
		"url":    url,
		"status": "ok",
		"data":   []int{1, 2, 3},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not marshal payload for %s", url)
	}

	return &Result{url: url, b: b}, nil
}

func (r *Result) URL() string {
	return r.url
}

func (r *Result) RawString() string {
	return string(r.b)
}

func (r *Result) Unmarshal(dest interface{}) error {
	if err := json.Unmarshal(r.b, &dest); err != nil {
		return errors.Wrap(ErrResultCouldNotBeUnmarshalled, err.Error())
	}

	return nil
}

func (r *Result) String(path string) (string, error) {
	get := gjson.GetBytes(r.b, path)
	if !get.Exists() {
		return "", ErrResultPathInvalid
	}

	return get.String(), nil
}

func (r *Result) StringOrDefault(path, def string) string {
	v, err := r.String(path)
	if err != nil {
		return def
	}

	return v
}

func (r *Result) Int(path string) (int, error) {
	get := gjson.GetBytes(r.b, path)
	if !get.Exists() {
		return 0, ErrResultPathInvalid
	}

	return int(get.Int()), nil
}

func (r *Result) IntOrDefault(path string, def int) int {
	v, err := r.Int(path)
	if err != nil {
		return def
	}

	return v
}

func (r *Result) Float(path string) (float64, error) {
	get := gjson.GetBytes(r.b, path)
	if !get.Exists() {
		return 0, ErrResultPathInvalid
	}

	return get.Float(), nil
}

func (r *Result) FloatOrDefault(path string, def float64) float64 {
	v, err := r.Float(path)
	if err != nil {
		return def
	}

	return v
}
