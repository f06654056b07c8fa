// Package env loads configuration values from the process environment.
//
// Struct fields opt in with the `env` tag and may declare a fallback with `default`
// and mark themselves mandatory with `required:"true"`.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"go.llib.dev/sequence/pkg/errorkit"
)

const ErrLoadInvalidData errorkit.Error = "ErrLoadInvalidData"

const envTagKey = "env"

var (
	tagsForDefaultValue = []string{"env-default", "default"}
	tagsForRequired     = []string{"env-required", "required"}
)

func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	val, ok, err := lookupEnv(reflect.TypeOf((*T)(nil)).Elem(), key, conf)
	if err != nil || !ok {
		return *new(T), ok, err
	}
	return val.Interface().(T), true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

func Load[T any](ptr *T) error {
	if ptr == nil {
		return ErrLoadInvalidData.F("nil value received")
	}
	rv := reflect.ValueOf(ptr).Elem()
	if rv.Kind() != reflect.Struct {
		return ErrLoadInvalidData.F("non-struct type received: %T", *ptr)
	}
	return loadVisitStruct(rv)
}

func loadVisitStruct(rStruct reflect.Value) error {
	var errs []error
	for i, numField := 0, rStruct.NumField(); i < numField; i++ {
		rStructField := rStruct.Type().Field(i)
		if !rStructField.IsExported() {
			continue
		}

		field := rStruct.Field(i)

		if field.Kind() == reflect.Struct {
			errs = append(errs, loadVisitStruct(field))
			continue
		}

		osEnvKey, ok := rStructField.Tag.Lookup(envTagKey)
		if !ok {
			continue
		}

		opts, err := getLookupEnvOptions(rStructField.Tag)
		if err != nil {
			errs = append(errs, errParsingEnvValue(rStructField, err))
			continue
		}

		val, ok, err := lookupEnv(field.Type(), osEnvKey, opts)
		if err != nil {
			errs = append(errs, errParsingEnvValue(rStructField, err))
			continue
		}
		if !ok {
			continue
		}
		field.Set(val)
	}
	return errorkit.Merge(errs...)
}

func getLookupEnvOptions(tag reflect.StructTag) (lookupEnvOptions, error) {
	var opts lookupEnvOptions
	for _, key := range tagsForDefaultValue {
		value, ok := tag.Lookup(key)
		if ok {
			opts.DefaultValue = &value
			break
		}
	}
	for _, key := range tagsForRequired {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		isRequired, err := strconv.ParseBool(value)
		if err != nil {
			return opts, err
		}
		opts.IsRequired = isRequired
		break
	}
	return opts, nil
}

type lookupEnvOptions struct {
	DefaultValue *string
	IsRequired   bool
}

func lookupEnv(typ reflect.Type, key string, opts lookupEnvOptions) (reflect.Value, bool, error) {
	val, ok := os.LookupEnv(key)
	if !ok && opts.DefaultValue != nil {
		ok = true
		val = *opts.DefaultValue
	}
	if !ok {
		var err error
		if opts.IsRequired {
			err = errMissingEnvironmentVariable(key)
		}
		return reflect.Value{}, false, err
	}
	rv, err := parse(typ, val)
	if err != nil {
		return reflect.Value{}, false, err
	}
	return rv, true, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func parse(typ reflect.Type, raw string) (reflect.Value, error) {
	rv := reflect.New(typ).Elem()
	if typ == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		rv.SetInt(int64(d))
		return rv, nil
	}
	switch typ.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		rv.SetUint(n)
	default:
		return reflect.Value{}, ErrLoadInvalidData.F("unsupported type: %s", typ.String())
	}
	return rv, nil
}

func errMissingEnvironmentVariable(key string) error {
	return fmt.Errorf("missing environment variable: %s", key)
}

func errParsingEnvValue(structField reflect.StructField, err error) error {
	return fmt.Errorf("error parsing the value for %s: %w", structField.Name, err)
}
