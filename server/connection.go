package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"
)

// participantTokenTTL is how long a minted connection token stays
// valid. Long enough to join, short enough to limit replay.
const participantTokenTTL = 15 * time.Minute

// ConnectionDetails is the payload the web client needs to join a
// voice session on the realtime runtime.
type ConnectionDetails struct {
	ServerURL        string `json:"serverUrl"`
	RoomName         string `json:"roomName"`
	ParticipantToken string `json:"participantToken"`
	ParticipantName  string `json:"participantName"`
}

// connectionDetails mints a LiveKit participant token bound to a
// fresh room and returns the connection bundle.
func (s *Server) connectionDetails(c echo.Context) error {
	participantName := "user"
	participantIdentity := "voice_assistant_user_" + randomSuffix()
	roomName := "voice_assistant_room_" + randomSuffix()

	token, err := s.mintParticipantToken(participantIdentity, participantName, roomName)
	if err != nil {
		slog.Error("failed to mint participant token", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, ConnectionDetails{
		ServerURL:        s.Profile.LiveKitURL,
		RoomName:         roomName,
		ParticipantToken: token,
		ParticipantName:  participantName,
	})
}

// mintParticipantToken builds the HS256 JWT the realtime runtime
// expects: issuer is the API key and the video grant scopes the token
// to one room.
func (s *Server) mintParticipantToken(identity, name, room string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"jti":  uuid.NewString(),
		"iss":  s.Profile.LiveKitAPIKey,
		"sub":  identity,
		"name": name,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(participantTokenTTL).Unix(),
		"video": map[string]any{
			"room":           room,
			"roomJoin":       true,
			"canPublish":     true,
			"canPublishData": true,
			"canSubscribe":   true,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Profile.LiveKitAPISecret))
}

func randomSuffix() string {
	return strings.ToLower(shortuuid.New()[:8])
}
