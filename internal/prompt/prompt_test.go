package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLineReturnsLinesInOrder(t *testing.T) {
	reader := NewReader(strings.NewReader("3\n7\nGood answer.\n"))

	first, err := reader.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "3", first)

	second, err := reader.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "7", second)

	third, err := reader.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "Good answer.", third)
}

func TestReadLineEOFAfterExhaustion(t *testing.T) {
	reader := NewReader(strings.NewReader("only line"))

	line, err := reader.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "only line", line)

	_, err = reader.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLineEmptyInput(t *testing.T) {
	reader := NewReader(strings.NewReader(""))

	_, err := reader.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}
