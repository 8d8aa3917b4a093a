package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ============================================================
// Validation
// ============================================================

// FieldError одна диагностика по полю, путь в json-нотации (walls[0].dimension.length).
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateFixtureVariant, Fixture{})
	return v
}

// validateFixtureVariant: не больше одного блока деталей, и он должен совпадать с fixture_type.
func validateFixtureVariant(sl validator.StructLevel) {
	f := sl.Current().Interface().(Fixture)
	if f.variantCount() > 1 {
		sl.ReportError(f.FixtureType, "fixture_type", "FixtureType", "single_variant", "")
		return
	}
	if v := f.Variant(); v != "" && v != f.FixtureType {
		sl.ReportError(f.FixtureType, string(v), string(v), "matches_fixture_type", string(f.FixtureType))
	}
}

// Validate runs struct validation and converts failures into *ValidationError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Decode разбирает JSON и валидирует результат. Ошибки формата тоже
// превращаются в *ValidationError.
func Decode(data []byte, out any) error {
	if len(data) == 0 {
		return &ValidationError{Fields: []FieldError{{Field: "body", Rule: "required"}}}
	}

	if err := json.Unmarshal(data, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Fields: []FieldError{{Field: typeErrorPath(data, typeErr), Rule: "type", Param: typeErr.Type.String()}}}
		}
		return &ValidationError{Fields: []FieldError{{Field: "body", Rule: "json", Param: err.Error()}}}
	}

	return Validate(out)
}

// typeErrorPath переводит путь json.UnmarshalTypeError (walls.dimension.length)
// в нотацию валидатора с индексами (walls[1].dimension.length): ищет по
// документу первое значение по этому пути с тем же JSON-типом.
func typeErrorPath(data []byte, typeErr *json.UnmarshalTypeError) string {
	if typeErr.Field == "" {
		return "body"
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return typeErr.Field
	}
	kind, _, _ := strings.Cut(typeErr.Value, " ")
	if path, ok := locate(doc, strings.Split(typeErr.Field, "."), kind, ""); ok {
		return path
	}
	return typeErr.Field
}

func locate(node any, segs []string, kind, prefix string) (string, bool) {
	if len(segs) == 0 && jsonKind(node) == kind {
		return prefix, true
	}

	if items, ok := node.([]any); ok {
		for i, item := range items {
			if path, ok := locate(item, segs, kind, fmt.Sprintf("%s[%d]", prefix, i)); ok {
				return path, true
			}
		}
		return "", false
	}
	if len(segs) == 0 {
		return "", false
	}

	obj, ok := node.(map[string]any)
	if !ok {
		return "", false
	}
	child, ok := obj[segs[0]]
	if !ok {
		return "", false
	}
	next := segs[0]
	if prefix != "" {
		next = prefix + "." + segs[0]
	}
	return locate(child, segs[1:], kind, next)
}

func jsonKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "null"
}

func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
