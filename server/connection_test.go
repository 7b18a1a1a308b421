package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvoice/cvoice/internal/profile"
)

func testServer() *Server {
	return NewServer(&profile.Profile{
		Mode:             "dev",
		Addr:             "",
		Port:             8080,
		LiveKitURL:       "wss://example.livekit.cloud",
		LiveKitAPIKey:    "APIkey123",
		LiveKitAPISecret: "supersecret",
	})
}

func TestConnectionDetails(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/connection-details", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echoServer.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var details ConnectionDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))

	assert.Equal(t, "wss://example.livekit.cloud", details.ServerURL)
	assert.Equal(t, "user", details.ParticipantName)
	assert.True(t, strings.HasPrefix(details.RoomName, "voice_assistant_room_"))
	require.NotEmpty(t, details.ParticipantToken)

	// The token must verify against the configured secret and carry
	// the video grant for the returned room.
	parsed, err := jwt.Parse(details.ParticipantToken, func(*jwt.Token) (any, error) {
		return []byte("supersecret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "APIkey123", claims["iss"])
	assert.True(t, strings.HasPrefix(claims["sub"].(string), "voice_assistant_user_"))

	video, ok := claims["video"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, details.RoomName, video["room"])
	assert.Equal(t, true, video["roomJoin"])
	assert.Equal(t, true, video["canPublish"])
	assert.Equal(t, true, video["canSubscribe"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, participantTokenTTL, exp.Sub(iat.Time))
}

func TestConnectionDetailsTokensAreUnique(t *testing.T) {
	s := testServer()

	mint := func() ConnectionDetails {
		req := httptest.NewRequest(http.MethodPost, "/api/connection-details", strings.NewReader("{}"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.echoServer.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var details ConnectionDetails
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
		return details
	}

	first := mint()
	second := mint()

	assert.NotEqual(t, first.RoomName, second.RoomName)
	assert.NotEqual(t, first.ParticipantToken, second.ParticipantToken)
}

func TestHealthz(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.echoServer.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
