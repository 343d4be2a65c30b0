package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ParseError turns binding errors into a field → message map keyed by the
// JSON field name, ready for form redisplay.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[jsonName(fe)] = message(fe)
		}
	} else if err != nil { // Non-validator errors (malformed JSON, wrong types)
		fields["body"] = err.Error()
	}
	return fields
}

func jsonName(fe validator.FieldError) string {
	if fe.Field() == "" {
		return "body"
	}
	return fe.Field()
}

// UseJSONNames makes gin's validator report fields by their json tag.
func UseJSONNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// blankOr is the prefix of tags that also accept an explicit empty string,
// e.g. "len=0|url". Such tags report the whole alternation as their tag.
const blankOr = "len=0|"

func message(fe validator.FieldError) string {
	tag, param := fe.Tag(), fe.Param()
	if strings.HasPrefix(tag, blankOr) {
		tag = strings.TrimPrefix(tag, blankOr)
		if name, p, ok := strings.Cut(tag, "="); ok {
			tag, param = name, p
		}
	}

	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email"
	case "url", "http_url":
		return "Must be a valid URL"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return fmt.Sprintf("Must be at least %s", param)
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must not exceed %s characters", param)
		}
		return fmt.Sprintf("Must not exceed %s", param)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", param)
	case "eqfield":
		return "Values do not match"
	default:
		return fmt.Sprintf("Field validation failed on the '%s' tag", tag)
	}
}
