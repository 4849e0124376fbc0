package satchel_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkruglov/satchel"
)

func TestNewUser(t *testing.T) {
	t.Run("valid emails are stored verbatim", func(t *testing.T) {
		emails := []string{
			"ada@example.com",
			"a.b_c%d+e@sub.domain.org",
			"X9@host.io",
		}

		for _, email := range emails {
			u, err := satchel.NewUser(1, "Ada", email)
			require.NoError(t, err)
			assert.Equal(t, email, u.Email)
		}
	})

	t.Run("invalid emails are rejected", func(t *testing.T) {
		emails := []string{
			"",
			"not-an-email",
			"missing@tld",
			"@example.com",
			"spaces in@example.com",
			"trailing@example.c",
		}

		for _, email := range emails {
			u, err := satchel.NewUser(1, "Ada", email)
			require.Error(t, err)
			assert.True(t, errors.Is(err, satchel.ErrInvalidEmail))
			assert.Nil(t, u)
		}
	})

	t.Run("roles and metadata", func(t *testing.T) {
		u, err := satchel.NewUser(7, "Grace", "grace@example.com", "admin", "auditor")
		require.NoError(t, err)

		assert.True(t, u.HasRole("admin"))
		assert.True(t, u.HasRole("auditor"))
		assert.False(t, u.HasRole("guest"))

		u.Meta["team"] = "infra"
		assert.Equal(t, "infra", u.Meta.String("team"))
		assert.False(t, u.Meta.HasInt("team"))
	})
}

func TestValidURL(t *testing.T) {
	assert.True(t, satchel.ValidURL("https://api.example.com/data"))
	assert.True(t, satchel.ValidURL("HTTP://example.org"))
	assert.False(t, satchel.ValidURL("ftp://example.org"))
	assert.False(t, satchel.ValidURL("https://nodots"))
	assert.False(t, satchel.ValidURL("example.com"))
}
