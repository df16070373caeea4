package result

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject implements the zapcore.ObjectMarshaler interface.
func (r Result[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("ok", r.ok)

	if r.ok {
		return enc.AddReflected("value", r.value)
	}

	if err, ok := any(r.err).(error); ok {
		enc.AddString("error", err.Error())

		return nil
	}

	return enc.AddReflected("error", r.err)
}

// Field constructs a zap.Field for logging a Result.
func Field[T, E any](key string, r Result[T, E]) zap.Field {
	return zap.Object(key, r)
}
