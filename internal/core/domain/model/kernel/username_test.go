package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

func TestUsernamePrefix(t *testing.T) {
	tests := []struct {
		lastName string
		want     string
	}{
		{lastName: "Smith", want: "smith"},
		{lastName: "O'Brien", want: "obrien"},
		{lastName: "van Dyke", want: "vandyke"},
		{lastName: "Müller", want: "müller"},
	}
	for _, tt := range tests {
		t.Run(tt.lastName, func(t *testing.T) {
			got, err := kernel.UsernamePrefix(tt.lastName)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no letters", func(t *testing.T) {
		_, err := kernel.UsernamePrefix(" 42 ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewUsername(t *testing.T) {
	u, err := kernel.NewUsername("smith", 1)
	require.NoError(t, err)
	require.NoError(t, u.Validate())
	assert.Equal(t, "smith01", u.String())

	u, err = kernel.NewUsername("smith", 123)
	require.NoError(t, err)
	assert.Equal(t, "smith123", u.String())

	_, err = kernel.NewUsername("", 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.NewUsername("smith", 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero kernel.Username
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestParseUsernameSequence(t *testing.T) {
	tests := []struct {
		username string
		want     int
		ok       bool
	}{
		{username: "smith01", want: 1, ok: true},
		{username: "smith12", want: 12, ok: true},
		{username: "smith100", want: 100, ok: true},
		{username: "smith", ok: false},
		{username: "smithson99", ok: false},
		{username: "smith_7", ok: false},
		{username: "smith+1", ok: false},
		{username: "jones01", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			got, ok := kernel.ParseUsernameSequence("smith", tt.username)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUsername(t *testing.T) {
	u, err := kernel.ParseUsername("obrien07")
	require.NoError(t, err)
	assert.Equal(t, "obrien", u.Prefix())
	assert.Equal(t, 7, u.Sequence())
	assert.Equal(t, "obrien07", u.String())

	u, err = kernel.ParseUsername("lee123")
	require.NoError(t, err)
	assert.Equal(t, 123, u.Sequence())

	for _, bad := range []string{"", "lee", "07", "lee00", "lee007", "lee7"} {
		t.Run(bad, func(t *testing.T) {
			_, err := kernel.ParseUsername(bad)
			require.ErrorIs(t, err, errs.ErrIdentifierFormat)
		})
	}
}
