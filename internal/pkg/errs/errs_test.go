package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"courier-trust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("missing courier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courierId", "4f2c8f0a")

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "4f2c8f0a", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 4f2c8f0a", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("share code lookup failure keeps the store cause", func(t *testing.T) {
		cause := errors.New("driver: bad connection")
		err := errs.NewObjectNotFoundErrorWithCause("code", "XK7M2P", cause)

		assert.Equal(t, "code", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: code, ID is: XK7M2P (cause: driver: bad connection)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("unknown claim type", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("claimType")

		assert.Equal(t, "claimType", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: claimType", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("enum parse failure carries the rejected value", func(t *testing.T) {
		cause := fmt.Errorf("unknown tier: %s", "wood")
		err := errs.NewValueIsInvalidErrorWithCause("planTier", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: planTier (cause: unknown tier: wood)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("overall score outside its scale", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("overall", 150, 0, 100)

		assert.Equal(t, "overall", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 150 is overall, min value is 0, max value is 100", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("latitude outside the valid band keeps the cause", func(t *testing.T) {
		cause := errors.New("device reported raw GPS")
		err := errs.NewValueIsOutOfRangeErrorWithCause("latitude", 91.5, -90.0, 90.0, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 91.5 is latitude, min value is -90, max value is 90 (cause: device reported raw GPS)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("multiline values are flattened to one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line one\nline two", 0, 10)
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("signer name missing at signature capture", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("signerName")

		assert.Equal(t, "signerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: signerName", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty photo payload keeps the decode cause", func(t *testing.T) {
		cause := errors.New("base64 payload decoded to zero bytes")
		err := errs.NewValueIsRequiredErrorWithCause("photo data", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: photo data (cause: base64 payload decoded to zero bytes)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("names the failed operation", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := errs.NewPersistenceError("insert policy", cause)

		assert.Equal(t, "insert policy", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "persistence failed: insert policy: connection reset by peer", err.Error())
		assert.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("store message is passed through verbatim", func(t *testing.T) {
		cause := errors.New(`ERROR: duplicate key value violates unique constraint "insurance_policies_pkey"`)
		err := errs.NewPersistenceError("insert policy", cause)
		assert.Contains(t, err.Error(), cause.Error())
	})

	t.Run("survives wrapping through a pipeline", func(t *testing.T) {
		// The submit pipeline wraps repository failures before surfacing them.
		inner := errs.NewPersistenceError("put object", errors.New("503 SlowDown"))
		wrapped := fmt.Errorf("uploading package photo: %w", inner)

		require.ErrorIs(t, wrapped, errs.ErrPersistence)
		var persistence *errs.PersistenceError
		require.ErrorAs(t, wrapped, &persistence)
		assert.Equal(t, "put object", persistence.Op)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "persistence failed", errs.ErrPersistence.Error())
}
