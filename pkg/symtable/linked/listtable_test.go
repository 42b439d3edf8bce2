package linked

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/scottcagno/symtable/pkg/alloc"
	"github.com/scottcagno/symtable/pkg/chain"
	"github.com/scottcagno/symtable/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, conf *Config) *ListTable[int] {
	t.Helper()
	l, err := New[int](conf)
	require.NoError(t, err)
	return l
}

func TestListTable_Example(t *testing.T) {
	l := newTable(t, nil)
	require.Equal(t, 0, l.Len())
	require.True(t, l.Put("a", 1))
	require.True(t, l.Put("b", 2))
	require.False(t, l.Put("a", 3))

	v, ok := l.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, l.Len())

	old, ok := l.Replace("a", 3)
	require.True(t, ok)
	require.Equal(t, 1, old)
	v, _ = l.Get("a")
	require.Equal(t, 3, v)

	v, ok = l.Remove("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, l.Len())
	require.False(t, l.Contains("b"))
	l.Free()
}

func TestListTable_NotFound(t *testing.T) {
	l := newTable(t, nil)
	defer l.Free()
	for _, n := range []int{0, 20} {
		for i := l.Len(); i < n; i++ {
			require.True(t, l.Put(strconv.Itoa(i), i))
		}
		require.False(t, l.Contains("x"))
		_, ok := l.Get("x")
		require.False(t, ok)
		_, ok = l.Replace("x", 1)
		require.False(t, ok)
		_, ok = l.Remove("x")
		require.False(t, ok)
		require.Equal(t, n, l.Len())
	}
}

func TestListTable_MapOrder(t *testing.T) {
	l := newTable(t, nil)
	defer l.Free()
	for i := 0; i < 5; i++ {
		require.True(t, l.Put(strconv.Itoa(i), i))
	}
	_, ok := l.Remove("2")
	require.True(t, ok)

	var keys []string
	sum := new(int)
	l.Map(func(key string, val int, extra any) {
		keys = append(keys, key)
		*extra.(*int) += val
	}, sum)
	require.Equal(t, []string{"4", "3", "1", "0"}, keys, "bindings are prepended")
	require.Equal(t, 8, *sum)
}

func TestListTable_MapMutation(t *testing.T) {
	l := newTable(t, nil)
	defer l.Free()
	require.True(t, l.Put("a", 1))
	require.PanicsWithValue(t, ErrMutatedDuringMap, func() {
		l.Map(func(key string, _ int, _ any) { l.Remove(key) }, nil)
	})
	require.PanicsWithValue(t, ErrNilApplyFunc, func() { l.Map(nil, nil) })

	l.Map(func(key string, val int, _ any) {
		_, ok := l.Replace(key, val+1)
		require.True(t, ok)
	}, nil)
	v, _ := l.Get("a")
	require.Equal(t, 2, v)
	require.True(t, l.Put("b", 1))
}

func TestListTable_AllocFailure(t *testing.T) {
	budget := alloc.NewBudget(0)
	l := newTable(t, &Config{Allocator: budget})
	require.True(t, l.Put("a", 1))
	inuse := budget.InUse()

	budget.SetLimit(inuse)
	require.False(t, l.Put("b", 2))
	budget.SetLimit(inuse + chain.NodeSize[int]())
	require.False(t, l.Put("b", 2))
	require.Equal(t, inuse, budget.InUse())
	require.Equal(t, 1, l.Len())
	require.False(t, l.Contains("b"))

	budget.SetLimit(0)
	require.True(t, l.Put("b", 2))
	l.Free()
	require.Zero(t, budget.InUse())
	require.Equal(t, budget.Allocs(), budget.Frees())
}

func TestNewAllocFailure(t *testing.T) {
	budget := alloc.NewBudget(1)
	l, err := New[int](&Config{Allocator: budget})
	require.Nil(t, l)
	require.True(t, errors.Is(err, alloc.ErrOutOfMemory), "got %v", err)
	require.Zero(t, budget.InUse())
}

func TestListTable_Free(t *testing.T) {
	var buf bytes.Buffer
	l := newTable(t, &Config{Logger: logger.NewLoggerWithWriter(&buf, logger.LevelDebug)})
	require.True(t, l.Put("a", 1))
	l.Free()
	assert.Contains(t, buf.String(), "freed list table with 1 bindings")
	require.PanicsWithValue(t, ErrTableFreed, func() { l.Len() })
	require.PanicsWithValue(t, ErrTableFreed, func() { l.Free() })

	var nilTable *ListTable[int]
	require.PanicsWithValue(t, ErrNilTable, func() { nilTable.Contains("a") })
}
