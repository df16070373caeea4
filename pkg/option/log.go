package option

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject implements the zapcore.ObjectMarshaler interface.
func (o Option[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("some", o.some)

	if !o.some {
		return nil
	}

	return enc.AddReflected("value", o.value)
}

// Field constructs a zap.Field for logging an Option.
func Field[T any](key string, o Option[T]) zap.Field {
	return zap.Object(key, o)
}
