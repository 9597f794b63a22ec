package entity

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mock-backend/internal/apierr"
)

// Codec validates incoming records for one entity kind and decodes them into
// the typed contract.
type Codec[T Entity] struct {
	// Kind is the collection the codec feeds.
	Kind Kind
	// IDField is the record key holding the identifier.
	IDField string
	// GeneratedID allows create requests without an identifier; the service
	// layer assigns one.
	GeneratedID bool

	rules  validation.MapRule
	decode func(Record) T
}

// Validate checks presence and types of the fields in r.
func (c Codec[T]) Validate(r Record) error {
	if r == nil {
		return apierr.MissingParameter("request body required", "data")
	}
	if err := validation.Validate(r, c.rules); err != nil {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return apierr.Internal("validation rule failure", err)
		}
		return apierr.Validation(err, fmt.Sprintf("invalid %s", c.Kind))
	}
	return nil
}

// Decode validates r and builds the typed entity from it.
func (c Codec[T]) Decode(r Record) (T, error) {
	if err := c.Validate(r); err != nil {
		var zero T
		return zero, err
	}
	return c.decode(r), nil
}

// FromRecord builds the typed entity without validating. Used for records
// already in the store.
func (c Codec[T]) FromRecord(r Record) T {
	return c.decode(r)
}

var (
	errNotString     = validation.NewError("validation_not_string", "must be a string")
	errNotBool       = validation.NewError("validation_not_bool", "must be a boolean")
	errNotStringList = validation.NewError("validation_not_string_list", "must be a list of strings")
	errNotRecord     = validation.NewError("validation_not_object", "must be an object")
)

var isString = validation.By(func(value any) error {
	if _, ok := value.(string); !ok {
		return errNotString
	}
	return nil
})

var isBool = validation.By(func(value any) error {
	if _, ok := value.(bool); !ok {
		return errNotBool
	}
	return nil
})

var isStringList = validation.By(func(value any) error {
	if _, ok := AsStrings(value); !ok {
		return errNotStringList
	}
	return nil
})

var isRecord = validation.By(func(value any) error {
	if _, ok := AsRecord(value); !ok {
		return errNotRecord
	}
	return nil
})

var isStatus = validation.By(func(value any) error {
	s, ok := value.(string)
	if !ok {
		return errNotString
	}
	if !Status(s).Valid() {
		return validation.NewError("validation_status", "must be one of active, inactive")
	}
	return nil
})

func requiredString(key string) *validation.KeyRules {
	return validation.Key(key, isString)
}

func optionalString(key string) *validation.KeyRules {
	return validation.Key(key, isString).Optional()
}

func optionalStatus() *validation.KeyRules {
	return validation.Key("status", isStatus).Optional()
}

func mapRules(keys ...*validation.KeyRules) validation.MapRule {
	return validation.Map(keys...).AllowExtraKeys()
}

func optionalBool(key string) *validation.KeyRules {
	return validation.Key(key, isBool).Optional()
}

func optionalRecord(key string) *validation.KeyRules {
	return validation.Key(key, isRecord).Optional()
}
