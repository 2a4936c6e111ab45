package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adminboard/internal/models"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	issuer := NewTokenIssuer(secret, time.Hour)
	user := models.User{ID: "42", Role: models.RoleManager}

	tok, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, models.RoleManager, claims.Role)
	require.NotEmpty(t, claims.ID)
}

func TestTokenIssuer_TokensAreDistinct(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)
	user := models.User{ID: "1", Role: models.RoleAdmin}

	a, err := issuer.Issue(user)
	require.NoError(t, err)
	b, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("right"), time.Hour)
	tok, err := issuer.Issue(models.User{ID: "1"})
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong"))
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), -time.Second)
	tok, err := issuer.Issue(models.User{ID: "1"})
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("k"))
	require.Error(t, err)
}
