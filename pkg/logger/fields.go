package logger

import (
	"errors"
	"fmt"
)

type LoggingDetail interface{ addTo(logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	e[f.Key] = toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		details["code"] = coded.Code()
	}
	return Field("error", details)
}

func toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		le := logEntry{}
		val.addTo(le)
		return map[string]any(le)
	case LoggingDetail:
		le := logEntry{}
		val.addTo(le)
		return map[string]any(le)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

type logEntry map[string]any

func (le logEntry) addTo(entry logEntry) { entry.Merge(le) }

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(logEntry) {}
