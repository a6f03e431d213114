package main

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = previous })
	return &buf
}

func TestLoginURLCmd(t *testing.T) {
	t.Setenv("AUTH_PROVIDER_DOMAIN", "auth.x.test")
	t.Setenv("AUTH_CLIENT_ID", "abc123")
	t.Setenv("BASE_URL", "https://x.test")
	out := captureStdout(t)

	cmd := &LoginURLCmd{ShowState: true}
	require.NoError(t, cmd.Run(&Globals{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "https://auth.x.test/oauth2/authorize?response_type=code&client_id=abc123&"), lines[0])

	target, err := url.Parse(lines[0])
	require.NoError(t, err)
	require.Equal(t, "https://x.test/callback", target.Query().Get("redirect_uri"))
	require.Equal(t, "state: "+target.Query().Get("state"), lines[1])
}

func TestLoginURLCmd_InvalidConfig(t *testing.T) {
	t.Setenv("BASE_URL", "not a url")
	out := captureStdout(t)

	cmd := &LoginURLCmd{}
	require.Error(t, cmd.Run(&Globals{}))
	require.Empty(t, out.String())
}
