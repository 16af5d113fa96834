package iocli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func pipeStdio(t *testing.T, input string) (*Stdio, *bytes.Buffer) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()
	t.Cleanup(func() { _ = r.Close() })

	out := &bytes.Buffer{}
	return newStdio(r, out), out
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio, out := pipeStdio(t, "")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Несколько вызовов ReadInput читают последовательные строки
func TestReadInput(t *testing.T) {
	stdio, out := pipeStdio(t, "  user input \nsecond\nlast")

	first, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)

	second, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	// последняя строка без перевода строки
	last, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = stdio.ReadInput("Prompt: ")
	assert.Error(t, err)

	assert.Contains(t, out.String(), "Prompt: ")
}

// Для pipe (не терминал) ReadPassword читает строку как обычный ввод
func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, _ := pipeStdio(t, "123\n")

	code, err := stdio.ReadPassword("Security Code: ")
	require.NoError(t, err)
	assert.Equal(t, "123", code)
}
