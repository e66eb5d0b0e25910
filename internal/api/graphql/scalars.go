package graphql

import (
	"fmt"
	"io"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
)

// MarshalUUID renders a uuid.UUID as a quoted string.
func MarshalUUID(u uuid.UUID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		_, _ = io.WriteString(w, strconv.Quote(u.String()))
	})
}

// UnmarshalUUID parses the UUID scalar.
func UnmarshalUUID(v interface{}) (uuid.UUID, error) {
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("cannot unmarshal %T to UUID", v)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("cannot parse %q as uuid: %w", s, err)
	}
	return parsed, nil
}

// MarshalUint64 renders the Uint64 scalar as a quoted string to avoid
// JavaScript number precision issues.
func MarshalUint64(u uint64) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		_, _ = io.WriteString(w, strconv.Quote(strconv.FormatUint(u, 10)))
	})
}

// UnmarshalUint64 parses the Uint64 scalar from a string or integer literal.
func UnmarshalUint64(v interface{}) (uint64, error) {
	switch v := v.(type) {
	case string:
		val, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as uint64: %w", v, err)
		}
		return val, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("uint64 cannot be negative: %d", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("uint64 cannot be negative: %d", v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot unmarshal %T to Uint64", v)
	}
}
