package nilcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testErr struct{}

func (*testErr) Error() string { return "test" }

func TestIsNil(t *testing.T) {
	req := require.New(t)

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var c chan int
	var e error
	var te *testErr

	req.True(IsNil(nil))
	req.True(IsNil(p))
	req.True(IsNil(m))
	req.True(IsNil(s))
	req.True(IsNil(f))
	req.True(IsNil(c))
	req.True(IsNil(e))
	req.True(IsNil(te))

	n := 0
	req.False(IsNil(0))
	req.False(IsNil(""))
	req.False(IsNil(struct{}{}))
	req.False(IsNil(&n))
	req.False(IsNil([]int{}))
	req.False(IsNil(errors.New("x")))
	req.False(IsNil(&testErr{}))
}
