package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/tendant/campus-content/pkg/campus"
)

// nullResolver is implemented by patch requests that treat an explicit
// JSON null differently from an omitted member.
type nullResolver interface {
	ResolveNulls(nulls []string) error
}

// decode reads a JSON object from the request body into dst and validates
// it. Strings are sanitized before they reach dst, unknown members are
// dropped and type mismatches are reported against the member name.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	return h.decodeBody(w, r, dst, true)
}

// decodeCredentials is decode without sanitizing, so secrets reach the
// password check exactly as sent.
func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request, dst any) error {
	return h.decodeBody(w, r, dst, false)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, sanitize bool) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return campus.NewValidationError("body", "request body is too large")
		}
		return campus.NewValidationError("body", "request body must be valid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return campus.NewValidationError("body", "request body must contain a single JSON object")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return campus.NewValidationError("body", "request body must be a JSON object")
	}
	if sanitize {
		campus.Sanitize(obj)
	}

	var nulls []string
	for k, v := range obj {
		if v == nil {
			nulls = append(nulls, k)
		}
	}
	sort.Strings(nulls)

	// encoding/json reports only the first type mismatch. Each mismatched
	// member is recorded and dropped, then the object is decoded again, so
	// every bad member is listed and validation below still sees the rest.
	var fields []campus.FieldError
	target := reflect.ValueOf(dst).Elem()
	for {
		clean, err := json.Marshal(obj)
		if err != nil {
			return err
		}
		target.SetZero()
		err = json.Unmarshal(clean, dst)
		if err == nil {
			break
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return campus.NewValidationError("body", "request body does not match the expected shape")
		}
		fields = append(fields, campus.FieldError{Field: typeErr.Field, Message: typeErr.Field + " has the wrong type"})
		if !dropMember(obj, typeErr.Field) {
			break
		}
	}

	var err error
	if nr, ok := dst.(nullResolver); ok {
		if fields, err = mergeFieldErrors(fields, nr.ResolveNulls(nulls)); err != nil {
			return err
		}
	}
	if fields, err = mergeFieldErrors(fields, campus.Validate(dst)); err != nil {
		return err
	}
	if len(fields) > 0 {
		return &campus.ValidationError{Fields: fields}
	}
	return nil
}

// dropMember deletes the member at a dotted path such as
// "socialLinks.email". It reports false when the path does not lead to an
// object member.
func dropMember(obj map[string]any, path string) bool {
	parts := strings.Split(path, ".")
	for _, name := range parts[:len(parts)-1] {
		next, ok := obj[name].(map[string]any)
		if !ok {
			return false
		}
		obj = next
	}
	last := parts[len(parts)-1]
	if _, ok := obj[last]; !ok {
		return false
	}
	delete(obj, last)
	return true
}

// mergeFieldErrors appends the fields of a *campus.ValidationError to
// fields, keeping only the first failure per field. Any other error is
// returned as is.
func mergeFieldErrors(fields []campus.FieldError, err error) ([]campus.FieldError, error) {
	if err == nil {
		return fields, nil
	}
	var verr *campus.ValidationError
	if !errors.As(err, &verr) {
		return fields, err
	}
	for _, f := range verr.Fields {
		if !slices.ContainsFunc(fields, func(seen campus.FieldError) bool { return seen.Field == f.Field }) {
			fields = append(fields, f)
		}
	}
	return fields, nil
}
