// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testA     = NewKey[float64]("a")
	testB     = NewKey[float64]("b")
	testC     = NewKey[float64]("c")
	testFloor = NewKey[float64]("floor")
	testLabel = NewKey[string]("label")
)

func TestSetGetAttribute(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 3)
	testLabel.Init(n, "x")

	v, err := testA.Get(n)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, "x", testLabel.Value(n))
	assert.True(t, n.Has("a"))
	assert.False(t, n.Has("missing"))
	assert.Equal(t, []Name{"a", "label"}, n.Names())

	_, err = n.Get("missing")
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestInitPanicsOnMisuse(t *testing.T) {
	n := NewNode("n")
	require.NoError(t, testB.Define(n, func() (float64, error) { return 1, nil }))
	assert.ErrorIs(t, initPanic(func() { testB.Init(n, 2) }), ErrReadOnly)

	dead := NewNode("dead")
	dead.Destroy()
	assert.ErrorIs(t, initPanic(func() { testA.Init(dead, 1) }), ErrDestroyed)
	assert.False(t, dead.Has("a"))
}

func initPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestSetFiresOnlyOnChange(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 1)
	var fired []Name
	n.OnAnyChange(func(name Name) { fired = append(fired, name) })
	perKey := 0
	h := n.OnChange("a", func() { perKey++ })

	require.NoError(t, testA.Set(n, 1))
	assert.Empty(t, fired, "writing an equal value must not fire")

	require.NoError(t, testA.Set(n, 2))
	assert.Equal(t, []Name{"a"}, fired)
	assert.Equal(t, 1, perKey)

	n.Off(h)
	require.NoError(t, testA.Set(n, 3))
	assert.Equal(t, 1, perKey)
}

func TestComputedCachedOnce(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 2)
	require.NoError(t, testB.Define(n, func() (float64, error) {
		return testA.Value(n) * 10, nil
	}, DependsOn(testA.Of(n))))

	first, err := testB.Get(n)
	require.NoError(t, err)
	second, err := testB.Get(n)
	require.NoError(t, err)

	assert.Equal(t, 20.0, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, n.Computations("b"), "second read must be a cache hit")
}

func TestComputedSeesNewValueAfterSet(t *testing.T) {
	src := NewNode("src")
	dst := NewNode("dst")
	testA.Init(src, 1)
	require.NoError(t, testB.Define(dst, func() (float64, error) {
		return testA.Value(src) * 2, nil
	}, DependsOn(testA.Of(src))))
	require.NoError(t, testC.Define(dst, func() (float64, error) {
		b, err := testB.Get(dst)
		return b + 1, err
	}, DependsOn(testB.Of(dst))))

	c, err := testC.Get(dst)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)

	for _, a := range []float64{5, -1, 0.5} {
		require.NoError(t, testA.Set(src, a))
		b, err := testB.Get(dst)
		require.NoError(t, err)
		c, err := testC.Get(dst)
		require.NoError(t, err)
		assert.Equal(t, a*2, b)
		assert.Equal(t, a*2+1, c)
	}
	// One initial computation plus one eager recomputation per write.
	assert.Equal(t, 4, dst.Computations("b"))
	assert.Equal(t, 4, dst.Computations("c"))
}

func TestUnchangedComputedDoesNotRefire(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 1)
	require.NoError(t, testFloor.Define(n, func() (float64, error) {
		return max(testA.Value(n), 10), nil
	}, DependsOn(testA.Of(n))))
	_, err := testFloor.Get(n)
	require.NoError(t, err)

	fired := 0
	n.OnChange("floor", func() { fired++ })

	require.NoError(t, testA.Set(n, 4))
	assert.Equal(t, 0, fired, "floor stays 10, no downstream event")
	assert.Equal(t, 2, n.Computations("floor"), "the recomputation check still runs")

	require.NoError(t, testA.Set(n, 12))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 12.0, testFloor.Value(n))
}

func TestUncachedComputed(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 1)
	require.NoError(t, testB.Define(n, func() (float64, error) {
		return testA.Value(n), nil
	}, DependsOn(testA.Of(n)), Uncached()))

	fired := 0
	n.OnChange("b", func() { fired++ })

	testB.Value(n)
	testB.Value(n)
	assert.Equal(t, 2, n.Computations("b"))

	require.NoError(t, testA.Set(n, 2))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 2, n.Computations("b"), "uncached properties are not recomputed eagerly")
}

func TestDefineValidatesDependencies(t *testing.T) {
	owner := NewNode("owner")
	testA.Init(owner, 1)
	n := NewNode("n")

	err := testB.Define(n, func() (float64, error) { return 0, nil }, DependsOn(testC.Of(owner)))
	assert.ErrorIs(t, err, ErrMissingAttribute)
	assert.False(t, n.Has("b"), "a failed Define must not register the property")
	assert.Equal(t, 0, owner.Bus().Total())

	err = testB.Define(n, func() (float64, error) { return 0, nil }, DependsOn(Dep{Name: "a"}))
	assert.ErrorIs(t, err, ErrMissingAttribute)

	owner.Destroy()
	err = testB.Define(n, func() (float64, error) { return 0, nil }, DependsOn(testA.Of(owner)))
	assert.ErrorIs(t, err, ErrStaleDependency)
}

func TestDefineDuplicate(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 1)
	err := testA.Define(n, func() (float64, error) { return 0, nil })
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStaleDependencyAfterDestroy(t *testing.T) {
	owner := NewNode("owner")
	testA.Init(owner, 1)
	n := NewNode("n")
	require.NoError(t, testB.Define(n, func() (float64, error) {
		return testA.Value(owner), nil
	}, DependsOn(testA.Of(owner))))
	_, err := testB.Get(n)
	require.NoError(t, err)

	owner.Destroy()
	_, err = testB.Get(n)
	assert.ErrorIs(t, err, ErrStaleDependency)
	assert.ErrorIs(t, testA.Set(owner, 2), ErrDestroyed)
}

func TestDestroyUnsubscribesListeners(t *testing.T) {
	owner := NewNode("owner")
	testA.Init(owner, 1)
	n := NewNode("n")
	require.NoError(t, testB.Define(n, func() (float64, error) {
		return testA.Value(owner), nil
	}, DependsOn(testA.Of(owner))))
	require.Equal(t, 1, owner.Bus().Count(EventName("a")))

	n.Destroy()
	assert.Equal(t, 0, owner.Bus().Count(EventName("a")))
	assert.True(t, n.Destroyed())

	// Writes to the owner no longer reach the destroyed node.
	require.NoError(t, testA.Set(owner, 5))
	assert.Equal(t, 0, n.Computations("b"))
}

func TestComputedReadOnly(t *testing.T) {
	n := NewNode("n")
	require.NoError(t, testB.Define(n, func() (float64, error) { return 1, nil }))
	assert.ErrorIs(t, testB.Set(n, 2), ErrReadOnly)
}

func TestCycle(t *testing.T) {
	n := NewNode("n")
	require.NoError(t, n.Define("self", func() (any, error) {
		return n.Get("self")
	}))
	_, err := n.Get("self")
	assert.ErrorIs(t, err, ErrCycle)
}

func TestGetterErrorIsNotCached(t *testing.T) {
	n := NewNode("n")
	testA.Init(n, 0)
	fail := errors.New("boom")
	require.NoError(t, testB.Define(n, func() (float64, error) {
		if testA.Value(n) == 0 {
			return 0, fail
		}
		return 1 / testA.Value(n), nil
	}, DependsOn(testA.Of(n))))

	_, err := testB.Get(n)
	assert.ErrorIs(t, err, fail)

	require.NoError(t, testA.Set(n, 4))
	v, err := testB.Get(n)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

func TestTypeMismatch(t *testing.T) {
	n := NewNode("n")
	require.NoError(t, n.Set("a", "not a number"))
	_, err := testA.Get(n)
	assert.ErrorIs(t, err, ErrType)
}
