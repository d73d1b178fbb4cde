package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
)

// maxBodySize limits the size of request bodies read by UnmarshalBody
const maxBodySize = 64 << 10

var (
	errRequestBodyInvalidJSON = func(err string) *Error {
		return &Error{
			Type:    "validation.requestBody.invalidJSON",
			Message: "Request body is not a valid JSON input.",
			Details: map[string]any{
				"error": err,
			},
		}
	}
	errRequestBodyInvalidForm = func(err string) *Error {
		return &Error{
			Type:    "validation.requestBody.invalidForm",
			Message: "Request body is not a valid form input.",
			Details: map[string]any{
				"error": err,
			},
		}
	}
	errRequestBodyParameterInvalidType = func(name, expectedType string) *Error {
		return &Error{
			Type:    "validation.requestBody.parameter.invalidType",
			Message: fmt.Sprintf("The request body parameter '%s' could not be assigned to the required type (%s).", name, expectedType),
			Details: map[string]any{
				"parameter":     name,
				"expected_type": expectedType,
			},
		}
	}
	errRequestBodyParameterMissing = func(name string) *Error {
		return &Error{
			Type:    "validation.requestBody.parameter.missing",
			Message: fmt.Sprintf("The request body parameter '%s' is required but was not present in the request.", name),
			Details: map[string]any{
				"parameter": name,
			},
		}
	}
)

// UnmarshalBody parses and decodes a JSON or URL-encoded form request body and performs validations on it.
// Form values are mapped onto the fields using their JSON names; only string fields can be filled from a form.
// Fields tagged with `required:"true"` have to be pointers; a pointer to a blank string counts as missing.
func UnmarshalBody[T any](request *http.Request) (*T, []*Error, error) {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))

	var body []byte
	if mediaType == "application/x-www-form-urlencoded" {
		if err := request.ParseForm(); err != nil {
			return nil, []*Error{errRequestBodyInvalidForm(err.Error())}, nil
		}
		values := make(map[string]string, len(request.PostForm))
		for key := range request.PostForm {
			values[key] = request.PostForm.Get(key)
		}
		encoded, err := json.Marshal(values)
		if err != nil {
			return nil, nil, err
		}
		body = encoded
	} else {
		raw, err := io.ReadAll(io.LimitReader(request.Body, maxBodySize))
		if err != nil {
			return nil, nil, err
		}
		body = raw
	}

	target := new(T)
	if err := json.Unmarshal(body, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, []*Error{errRequestBodyParameterInvalidType(typeErr.Field, typeErr.Type.String())}, nil
		}
		return nil, []*Error{errRequestBodyInvalidJSON(err.Error())}, nil
	}

	errs, err := validateStruct(target)
	if err != nil {
		return nil, nil, err
	}
	return target, errs, nil
}

func validateStruct(val any) ([]*Error, error) {
	ref := reflect.ValueOf(val)
	if ref.Kind() == reflect.Pointer {
		ref = ref.Elem()
	}
	if ref.Kind() != reflect.Struct {
		return nil, errors.New("illegal call to validateStruct with non-struct parameter")
	}
	typ := ref.Type()

	var errs []*Error
	for i := 0; i < typ.NumField(); i++ {
		fieldDef := typ.Field(i)
		if !strings.EqualFold(fieldDef.Tag.Get("required"), "true") {
			continue
		}

		field := ref.Field(i)
		if field.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("required field '%s' is not a pointer", fieldDef.Name)
		}
		if field.IsNil() || (field.Elem().Kind() == reflect.String && strings.TrimSpace(field.Elem().String()) == "") {
			errs = append(errs, errRequestBodyParameterMissing(getFieldName(fieldDef)))
		}
	}
	return errs, nil
}

func getFieldName(def reflect.StructField) string {
	jsonVal, ok := def.Tag.Lookup("json")
	if !ok || jsonVal == "-" {
		return def.Name
	}
	name, _, _ := strings.Cut(jsonVal, ",")
	return name
}
