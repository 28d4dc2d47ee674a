package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }

func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestRegister_Internal(t *testing.T) {
	r := New(false)
	got, err := r.Read()
	require.NoError(t, err)
	assert.Empty(t, got)

	text := []byte("yanked")
	r.Write(text)
	text[0] = 'X'

	got, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "yanked", string(got))
}

func TestRegister_Backend(t *testing.T) {
	b := &fakeBackend{}
	r := NewWithBackend(b)

	r.Write([]byte("line\n"))
	assert.Equal(t, "line\n", b.text)

	b.text = "from elsewhere"
	got, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "from elsewhere", string(got))
}

func TestRegister_BackendFailures(t *testing.T) {
	boom := errors.New("no display")
	b := &fakeBackend{readErr: boom, writeErr: boom}
	r := NewWithBackend(b)

	_, err := r.Read()
	assert.ErrorIs(t, err, boom)

	r.Write([]byte("kept"))
	got, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "kept", string(got))
}
