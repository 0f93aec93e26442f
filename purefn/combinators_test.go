package purefn_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/memo_ive_go/purefn"
)

func TestCompose(t *testing.T) {
	length := purefn.Compose1(func(s string) int { return len(s) }, strconv.Itoa)
	assert.Equal(t, 3, length(123))

	concat := purefn.Compose2(
		func(a, b string) string { return a + b },
		strconv.Itoa,
		strings.ToUpper,
	)
	assert.Equal(t, "1AB", concat(1, "ab"))
}

func TestAndThen(t *testing.T) {
	double := purefn.AndThen1(func(i int) int { return i * 2 }, strconv.Itoa)
	assert.Equal(t, "8", double(4))

	sum := purefn.AndThen2(func(a, b int) int { return a + b }, func(r int) bool { return r > 0 })
	assert.True(t, sum(1, 2))
	assert.False(t, sum(-3, 2))

	join := purefn.AndThen3(func(a, b, c string) string { return a + b + c }, strings.ToUpper)
	assert.Equal(t, "ABC", join("a", "b", "c"))
}

func TestPartial(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 7, purefn.Partial2First(sub, 10)(3))
	assert.Equal(t, -7, purefn.Partial2Second(sub, 10)(3))

	sum3 := purefn.Partial3First(func(a, b, c int) int { return a*100 + b*10 + c }, 1)
	assert.Equal(t, 123, sum3(2, 3))

	sum4 := purefn.Partial4First(func(a, b, c, d int) int { return a + b + c + d }, 1)
	assert.Equal(t, 10, sum4(2, 3, 4))
}

func TestTupled(t *testing.T) {
	add := purefn.Func2[int, int, int](func(a, b int) int { return a + b })
	tupled := add.Tupled()
	assert.Equal(t, 5, tupled(lo.T2(2, 3)))
	assert.Equal(t, 5, purefn.Untupled2(tupled)(2, 3))

	add3 := purefn.Func3[int, int, int, int](func(a, b, c int) int { return a + b + c })
	assert.Equal(t, 6, add3.Tupled()(lo.T3(1, 2, 3)))

	add4 := purefn.Func4[int, int, int, int, int](func(a, b, c, d int) int { return a + b + c + d })
	assert.Equal(t, 10, add4.Tupled()(lo.T4(1, 2, 3, 4)))
}

func TestOnlyFirstOnlySecond(t *testing.T) {
	first := purefn.OnlyFirst[int, string](strconv.Itoa)
	assert.Equal(t, "1", first(1, "ignored"))

	second := purefn.OnlySecond[int, string](strings.ToUpper)
	assert.Equal(t, "X", second(42, "x"))
}

func TestConsume(t *testing.T) {
	calls := 0
	f := purefn.Func1[int, int](func(i int) int {
		calls++
		return i
	})
	f.Consume()(1)

	g := purefn.Func2[int, int, int](func(a, b int) int {
		calls++
		return a + b
	})
	g.Consume()(1, 2)

	h := purefn.FuncE1[int, int](func(i int) (int, error) {
		calls++
		return i, nil
	})
	assert.NoError(t, h.Consume()(1))
	assert.Equal(t, 3, calls)
}

func TestArity(t *testing.T) {
	assert.Equal(t, 1, purefn.Func1[int, int](nil).Arity())
	assert.Equal(t, 2, purefn.Func2[int, int, int](nil).Arity())
	assert.Equal(t, 3, purefn.Func3[int, int, int, int](nil).Arity())
	assert.Equal(t, 4, purefn.Func4[int, int, int, int, int](nil).Arity())
	assert.Equal(t, 1, purefn.FuncE1[int, int](nil).Arity())
	assert.Equal(t, 2, purefn.FuncE2[int, int, int](nil).Arity())
}

func TestComposeWithMemoized(t *testing.T) {
	count := 0
	m := purefn.Memoize1(func(n int) int {
		count++
		return n * n
	})

	squareOfLen := purefn.Compose1(m.Func(), func(s string) int { return len(s) })
	assert.Equal(t, 9, squareOfLen("abc"))
	assert.Equal(t, 9, squareOfLen("xyz"))
	assert.Equal(t, 1, count)
}
