package attr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attrkit/pkg/attr"
)

// record is a minimal host type for accessor tests. It deliberately carries no
// field storage of its own.
type record struct {
	id int
}

var errBad = errors.New("bad value")

func upperNonEmpty(field string, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%s: %w", field, errBad)
	}
	return strings.ToUpper(v), nil
}

func TestAccessorBind(t *testing.T) {
	t.Parallel()

	t.Run("bind assigns name", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("nickname")
		assert.Equal(t, "nickname", a.Name())
	})

	t.Run("rebind panics", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("nickname")
		assert.Panics(t, func() { a.Bind("other") })
	})

	t.Run("empty name panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { attr.New[record, string]().Bind("") })
	})

	t.Run("unbound accessor errors on use", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]()
		host := &record{id: 1}

		_, err := a.Get(host)
		assert.ErrorIs(t, err, attr.ErrUnbound)

		err = a.Set(host, "x")
		assert.ErrorIs(t, err, attr.ErrUnbound)
	})
}

func TestAccessorSetGet(t *testing.T) {
	t.Parallel()

	t.Run("round trip returns normalized value", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string](attr.WithValidator[record](upperNonEmpty)).Bind("code")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, "  abc "))

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, "ABC", got)
	})

	t.Run("rejected write leaves prior value unchanged", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string](attr.WithValidator[record](upperNonEmpty)).Bind("code")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, "ok"))
		require.ErrorIs(t, a.Set(host, "   "), errBad)

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, "OK", got)
	})

	t.Run("rejected first write stays uninitialized", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string](attr.WithValidator[record](upperNonEmpty)).Bind("code")
		host := &record{id: 1}

		require.Error(t, a.Set(host, ""))

		_, err := a.Get(host)
		assert.ErrorIs(t, err, attr.ErrUninitialized)
		assert.Zero(t, a.Len())
	})

	t.Run("no validator accepts everything", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, int]().Bind("count")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, -42))

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, -42, got)
	})

	t.Run("nil host rejected", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")

		_, err := a.Get(nil)
		assert.ErrorIs(t, err, attr.ErrNilHost)

		err = a.Set(nil, "x")
		assert.ErrorIs(t, err, attr.ErrNilHost)
	})
}

func TestAccessorDefaults(t *testing.T) {
	t.Parallel()

	t.Run("no default yields ErrUninitialized", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")
		host := &record{id: 1}

		_, err := a.Get(host)
		require.ErrorIs(t, err, attr.ErrUninitialized)
		assert.ErrorContains(t, err, "code")
	})

	t.Run("default materialized and cached on first read", func(t *testing.T) {
		t.Parallel()
		calls := 0
		a := attr.New[record, int](attr.WithDefault[record, int](func() int {
			calls++
			return 7
		})).Bind("retries")
		host := &record{id: 1}

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, 7, got)

		got, err = a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.Equal(t, 1, calls, "default factory must run once per host")
	})

	t.Run("mutable default not aliased across hosts", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, []string](attr.WithDefault[record, []string](func() []string {
			return []string{"a"}
		})).Bind("tags")
		first := &record{id: 1}
		second := &record{id: 2}

		v1, err := a.Get(first)
		require.NoError(t, err)
		v1[0] = "mutated"

		v2, err := a.Get(second)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v2)
	})

	t.Run("write shadows default", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, int](attr.WithDefault[record, int](func() int { return 7 })).Bind("retries")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, 3))

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("introspection", func(t *testing.T) {
		t.Parallel()
		plain := attr.New[record, int]().Bind("plain")
		defaulted := attr.New[record, int](attr.WithDefault[record, int](func() int { return 0 })).Bind("defaulted")

		assert.False(t, plain.HasDefault())
		assert.True(t, defaulted.HasDefault())
		assert.Zero(t, plain.Len())
	})
}

func TestAccessorIsolation(t *testing.T) {
	t.Parallel()

	t.Run("same field different hosts", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")
		first := &record{id: 1}
		second := &record{id: 2}

		require.NoError(t, a.Set(first, "one"))
		require.NoError(t, a.Set(second, "two"))

		got, err := a.Get(first)
		require.NoError(t, err)
		assert.Equal(t, "one", got)

		got, err = a.Get(second)
		require.NoError(t, err)
		assert.Equal(t, "two", got)
		assert.Equal(t, 2, a.Len())
	})

	t.Run("different fields same host", func(t *testing.T) {
		t.Parallel()
		first := attr.New[record, string]().Bind("first")
		second := attr.New[record, string]().Bind("second")
		host := &record{id: 1}

		require.NoError(t, first.Set(host, "one"))

		_, err := second.Get(host)
		assert.ErrorIs(t, err, attr.ErrUninitialized, "writing one field must not touch another")

		require.NoError(t, second.Set(host, "two"))
		got, err := first.Get(host)
		require.NoError(t, err)
		assert.Equal(t, "one", got)
	})
}

func TestAccessorDelete(t *testing.T) {
	t.Parallel()

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, "x"))
		a.Delete(host)

		_, err := a.Get(host)
		assert.ErrorIs(t, err, attr.ErrUninitialized)
		assert.Zero(t, a.Len())
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")
		host := &record{id: 1}

		assert.NotPanics(t, func() {
			a.Delete(host)
			a.Delete(host)
			a.Delete(nil)
		})
	})

	t.Run("delete then default rematerializes", func(t *testing.T) {
		t.Parallel()
		calls := 0
		a := attr.New[record, int](attr.WithDefault[record, int](func() int {
			calls++
			return calls
		})).Bind("gen")
		host := &record{id: 1}

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		a.Delete(host)

		got, err = a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("set after delete works", func(t *testing.T) {
		t.Parallel()
		a := attr.New[record, string]().Bind("code")
		host := &record{id: 1}

		require.NoError(t, a.Set(host, "x"))
		a.Delete(host)
		require.NoError(t, a.Set(host, "y"))

		got, err := a.Get(host)
		require.NoError(t, err)
		assert.Equal(t, "y", got)
	})
}
