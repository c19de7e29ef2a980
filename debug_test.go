package bacnet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type debugNode struct {
	Name string
	Next *debugNode
}

func TestDebugContentsCycleGuard(t *testing.T) {
	n := &debugNode{Name: "a"}
	n.Next = n

	var buf bytes.Buffer
	require.NotPanics(t, func() { DebugContents(&buf, n) })
	require.Contains(t, buf.String(), "<cycle")
}

func TestDebugContentsNilPointer(t *testing.T) {
	var n *debugNode
	var buf bytes.Buffer
	require.NotPanics(t, func() { DebugContents(&buf, n) })
	require.Contains(t, buf.String(), "<nil>")
}

func TestDebugContentsStructFieldsAndSlice(t *testing.T) {
	type container struct {
		Items []int
		Label string
	}
	c := container{Items: []int{1, 2, 3}, Label: "x"}

	var buf bytes.Buffer
	DebugContents(&buf, &c)
	out := buf.String()
	require.Contains(t, out, "container")
	require.Contains(t, out, "Label")
	require.Contains(t, out, "[3]")
}
