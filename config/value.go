package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"

	clierr "github.com/randalmurphal/cliforge/errors"
)

// Value looks up key like Store.Get and converts the injected value to T.
// Supported types are string, bool, int, int64, float64, time.Duration and
// []string (comma separated).
func Value[T any](s *Store, key string, def ...string) (T, bool, error) {
	var zero T
	raw, ok := s.Get(key, def...)
	if !ok {
		return zero, false, nil
	}
	v, err := convert[T](raw)
	if err != nil {
		return zero, true, clierr.Application("config.get", fmt.Errorf("property %s: %w", key, err))
	}
	return v, true, nil
}

// RequiredValue is like Value but absence is a contract error naming the key.
func RequiredValue[T any](s *Store, key string, def ...string) (T, error) {
	v, ok, err := Value[T](s, key, def...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, clierr.NewPropertyNotFoundError(key)
	}
	return v, nil
}

func convert[T any](raw string) (T, error) {
	var out T
	var (
		v   any
		err error
	)
	switch any(out).(type) {
	case string:
		v = raw
	case bool:
		v, err = cast.ToBoolE(strings.TrimSpace(raw))
	case int:
		v, err = cast.ToIntE(strings.TrimSpace(raw))
	case int64:
		v, err = cast.ToInt64E(strings.TrimSpace(raw))
	case float64:
		v, err = cast.ToFloat64E(strings.TrimSpace(raw))
	case time.Duration:
		v, err = cast.ToDurationE(strings.TrimSpace(raw))
	case []string:
		v = splitList(raw)
	default:
		return out, fmt.Errorf("unsupported property type %T", out)
	}
	if err != nil {
		return out, err
	}
	return v.(T), nil
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
