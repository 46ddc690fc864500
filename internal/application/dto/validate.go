package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo, que es el que conoce el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeStrict decodifica un cuerpo JSON rechazando campos desconocidos y valida las
// etiquetas `validate`. Todos los errores envuelven domain.ErrInvalidInput.
func DecodeStrict(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.Invalid("request body is required")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("malformed body: %s", describeDecodeError(err))
	}
	if dec.More() {
		return domain.Invalid("malformed body: trailing data")
	}
	return Validate(dst)
}

// Validate aplica las reglas `validate` de la estructura.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid("%s", err.Error())
	}
	fe := verrs[0]
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return domain.Invalid("%s is required", field)
	case "oneof":
		return domain.Invalid("%s must be one of: %s", field, fe.Param())
	case "email":
		return domain.Invalid("%s must be a valid email", field)
	case "min":
		return domain.Invalid("%s must have at least %s element(s)", field, fe.Param())
	case "max":
		return domain.Invalid("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return domain.Invalid("%s must be greater than %s", field, fe.Param())
	default:
		return domain.Invalid("%s is invalid (%s)", field, fe.Tag())
	}
}

// fieldPath quita el nombre del struct raíz: "CreateKitRequest.items[0].partId" -> "items[0].partId".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type.String())
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "unexpected end of JSON"
	default:
		return err.Error()
	}
}
