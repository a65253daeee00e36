package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/memory"
	"github.com/Apurer/go-gin-order-server/internal/domains/customers/application"
	"github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
)

func TestSignUpThenSignIn(t *testing.T) {
	svc := application.NewService(memory.NewRepository())

	created, err := svc.SignUp(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", created.Email)
	require.NotEqual(t, "hunter2", created.PasswordHash, "password must not be stored in cleartext")

	signedIn, err := svc.SignIn(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, signedIn.ID)
}

func TestSignUpRejectsMalformedEmail(t *testing.T) {
	svc := application.NewService(memory.NewRepository())

	for _, email := range []string{"", "not-an-email", "missing@tld@twice"} {
		_, err := svc.SignUp(context.Background(), email, "secret")
		assert.ErrorIs(t, err, application.ErrBadEmailSyntax, "email %q", email)
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := application.NewService(memory.NewRepository())

	_, err := svc.SignUp(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), "ada@example.com", "other-secret")
	assert.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestSignInWrongPassword(t *testing.T) {
	svc := application.NewService(memory.NewRepository())

	_, err := svc.SignUp(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc := application.NewService(memory.NewRepository())

	_, err := svc.SignIn(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestSameParametersHashDeterministically(t *testing.T) {
	repo := memory.NewRepository()
	svc := application.NewService(repo)

	first, err := svc.SignUp(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	other := application.NewService(repo)
	signedIn, err := other.SignIn(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, signedIn.PasswordHash)
}
