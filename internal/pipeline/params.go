package pipeline

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by the key the orchestrator sends, not the Go name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// DecodeParameters parses the UserParameters string of a job into T and
// checks its `validate` tags. Any failure is a ConfigurationError for op.
// When validation fails the error carries the subject of what was decoded.
func DecodeParameters[T any](op, raw string) (T, error) {
	var params T

	if strings.TrimSpace(raw) == "" {
		return params, ConfigurationError(op, errors.New("user parameters are empty"))
	}
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return params, ConfigurationError(op, errors.Wrap(err, "could not decode user parameters as a JSON object"))
	}
	if err := validate().Struct(params); err != nil {
		return params, &Error{
			Kind:    KindConfiguration,
			Op:      op,
			Subject: subjectOf(params),
			Err:     errors.WithStack(describeValidation(err)),
		}
	}

	return params, nil
}

// Subjecter is implemented by parameter types that can name the resources a
// job targets, e.g. `from bucket "a" to bucket "b"`. Missing values render
// as empty strings.
type Subjecter interface {
	Subject() string
}

// DescribeParameters decodes raw into T without validating it and returns
// its subject. It returns "" when raw is not a JSON object or T has no
// subject.
func DescribeParameters[T any](raw string) string {
	var params T
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return ""
	}
	return subjectOf(params)
}

func subjectOf(params any) string {
	if s, ok := params.(Subjecter); ok {
		return s.Subject()
	}
	return ""
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return errors.Errorf("missing required parameter(s): %s", strings.Join(missing, ", "))
}
