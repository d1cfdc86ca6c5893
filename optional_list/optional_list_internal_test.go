package optional_list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopNodeSevers(t *testing.T) {
	assert := assert.New(t)

	l := New()
	l.Push(1)
	l.Push(2)

	n := l.popNode()
	if assert.NotNil(n) {
		assert.Equal(int32(2), n.elem)
		assert.Nil(n.next, "detached node still owns the rest")
	}
	assert.Equal(int32(1), l.head.elem)

	l.popNode()
	assert.Nil(l.head)
	assert.Nil(l.popNode())
}

func TestTake(t *testing.T) {
	assert := assert.New(t)

	var field link = &node{elem: 3}
	old := take(&field)
	assert.Nil(field)
	assert.Equal(int32(3), old.elem)

	// taking from an empty link is fine and yields empty
	assert.Nil(take(&field))
}

func TestMapNode(t *testing.T) {
	assert := assert.New(t)

	double := func(n *node) int64 { return 2 * int64(n.elem) }
	v, ok := mapNode(&node{elem: 21}, double)
	assert.True(ok)
	assert.Equal(int64(42), v)

	v, ok = mapNode(nil, double)
	assert.False(ok)
	assert.Equal(int64(0), v)
}
