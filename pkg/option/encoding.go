package option

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// IsZero reports whether the Option is empty.
// Encoders use it to omit empty Options from the output.
func (o Option[T]) IsZero() bool {
	return !o.some
}

// MarshalJSON implements the json.Marshaler interface.
// None is encoded as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// null decodes as None.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()

		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	*o = Optional(v)

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
// None is encoded as null.
func (o Option[T]) MarshalYAML() (interface{}, error) {
	if !o.some {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// null decodes as None.
func (o *Option[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*o = None[T]()

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return err
	}

	*o = Optional(v)

	return nil
}

type mapstructureDecoder interface {
	decodeMapstructure(data interface{}, config mapstructure.DecoderConfig) error
}

// DecodeHook returns a mapstructure decode hook that decodes raw values into Option fields.
//
// The value inside an Option is decoded with a copy of config, so settings like TagName,
// WeaklyTypedInput and ErrorUnused apply to it as well. Pass the same settings the outer decoder uses.
// Result and Metadata of config are ignored: the inner decoder has no key path to report.
// The hook runs before config.DecodeHook, if any.
//
// Missing and nil values leave the field untouched, so they decode as None.
// The hook also applies to the value inside the Option, which makes nested Options work.
func DecodeHook(config mapstructure.DecoderConfig) mapstructure.DecodeHookFuncType {
	config.Result = nil
	config.Metadata = nil

	var hook mapstructure.DecodeHookFuncType

	hook = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == to {
			return data, nil
		}

		target := reflect.New(to)

		decoder, ok := target.Interface().(mapstructureDecoder)
		if !ok {
			return data, nil
		}

		inner := config
		if config.DecodeHook != nil {
			inner.DecodeHook = mapstructure.ComposeDecodeHookFunc(hook, config.DecodeHook)
		} else {
			inner.DecodeHook = hook
		}

		err := decoder.decodeMapstructure(data, inner)
		if err != nil {
			return nil, err
		}

		return target.Elem().Interface(), nil
	}

	return hook
}

func (o *Option[T]) decodeMapstructure(data interface{}, config mapstructure.DecoderConfig) error {
	var v T

	config.Result = &v

	decoder, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return err
	}

	err = decoder.Decode(data)
	if err != nil {
		return err
	}

	*o = Optional(v)

	return nil
}
