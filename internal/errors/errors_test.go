package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_KeepsCause(t *testing.T) {
	cause := &codedError{code: "LOCATION_IN_USE"}
	err := Wrapf(Wrap(cause, "failed to delete city"), "row %d", 3)

	assert.Equal(t, "row 3: failed to delete city: LOCATION_IN_USE", err.Error())
	assert.True(t, Is(err, cause))

	got, ok := AsAppError[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "LOCATION_IN_USE", got.code)

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestOrigin(t *testing.T) {
	assert.Empty(t, Origin(New("plain")))
	assert.Empty(t, Origin(nil))

	origin := Origin(Wrap(WithStack(New("boom")), "outer"))
	assert.Contains(t, origin, "TestOrigin")
	assert.Contains(t, origin, "errors_test.go:")
}
