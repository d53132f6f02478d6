package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, scope string, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": scope,
		"exp":   expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

// fakePDS serves createSession for a fixed set of identifier/password pairs.
func fakePDS(t *testing.T, passwords map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/xrpc/com.atproto.server.createSession" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var input struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		if passwords[input.Identifier] != input.Password {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"AuthenticationRequired","message":"Invalid identifier or password"}`))
			return
		}

		access := signedToken(t, "com.atproto.appPass", time.Now().Add(2*time.Hour))
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w,
			`{"did":"did:plc:%[1]s","handle":"%[1]s.test","email":"%[1]s@example.com","accessJwt":"%[2]s","refreshJwt":"refresh-%[1]s"}`,
			input.Identifier, access)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestLoginStoresAccountAndListsIt(t *testing.T) {
	home := t.TempDir()
	server := fakePDS(t, map[string]string{"alice": "hunter2"})

	stdout, _, err := executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "alice", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as alice.test (did:plc:alice)")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.Contains(t, stdout, "alice.test")
	assert.Contains(t, stdout, "[active]")
	assert.Contains(t, stdout, "auth: app password")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	home := t.TempDir()
	server := fakePDS(t, map[string]string{"alice": "hunter2"})

	_, _, err := executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "alice", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthenticationRequired")

	stdout, _, err := executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 0")
}

func TestLoginRequiresIdentifierFlag(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--password", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"identifier\" not set")
}

func TestAccountSwitchChangesActiveAccount(t *testing.T) {
	home := t.TempDir()
	server := fakePDS(t, map[string]string{"alice": "pw-a", "bob": "pw-b"})

	_, _, err := executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "alice", "--password", "pw-a")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "bob", "--password", "pw-b")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "account", "switch", "bob.test")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Active account is now bob.test (did:plc:bob)")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 2")
	assert.Contains(t, stdout, "bob.test [active]")
}

func TestAccountSwitchUnknownAccountFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "account", "switch", "nobody.test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestLogoutRemovesAccountAndPromotesNext(t *testing.T) {
	home := t.TempDir()
	server := fakePDS(t, map[string]string{"alice": "pw-a", "bob": "pw-b"})

	_, _, err := executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "alice", "--password", "pw-a")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "bob", "--password", "pw-b")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "logout", "alice.test")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out alice.test (did:plc:alice)")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.NotContains(t, stdout, "alice.test")
	assert.Contains(t, stdout, "bob.test [active]")
}

func TestLoginShowsSpinnerMessage(t *testing.T) {
	home := t.TempDir()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		access := signedToken(t, "com.atproto.appPass", time.Now().Add(2*time.Hour))
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w,
			`{"did":"did:plc:alice","handle":"alice.test","accessJwt":"%s","refreshJwt":"refresh-alice"}`, access)
	}))
	t.Cleanup(server.Close)

	_, stderr, err := executeCLI(t, home,
		"login", "--service", server.URL, "--identifier", "alice", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Signing in")
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
