package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, the names operators set in
// YAML and APP_ variables.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the loaded configuration. The server refuses to start on
// any problem and lists all of them at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

var messages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of: %s",
	"url":      "must be a valid URL",
	"email":    "must be a valid email address",
}

func describe(fe validator.FieldError) string {
	key := koanfKey(fe.Namespace())

	if fe.Tag() == "required_if" {
		cond, _, _ := strings.Cut(fe.Param(), " ")
		return fmt.Sprintf("%s is required when %s is set", key, koanfKey(parentOf(fe.Namespace())+"."+strings.ToLower(cond)))
	}
	if msg, ok := messages[fe.Tag()]; ok {
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		return key + " " + msg
	}
	return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
}

// koanfKey drops the root struct name: "Config.site.icon_base_url" becomes
// "site.icon_base_url".
func koanfKey(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return key
}

func parentOf(namespace string) string {
	i := strings.LastIndex(namespace, ".")
	if i < 0 {
		return namespace
	}
	return namespace[:i]
}
