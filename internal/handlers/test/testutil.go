package test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/daily-scrum-bot/internal/handlers"
	"github.com/diegoclair/daily-scrum-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

const (
	SigningSecret = "test-signing-secret"
	GuildID       = "G123456789"
)

type ServiceMocks struct {
	ScrumServiceMock *mocks.MockScrumService
	SlackClientMock  *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()
	return GetHandlerTestWithSecret(t, SigningSecret)
}

func GetHandlerTestWithSecret(t *testing.T, signingSecret string) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ScrumServiceMock: mocks.NewMockScrumService(ctrl),
		SlackClientMock:  mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.New(m.SlackClientMock, m.ScrumServiceMock, signingSecret, zaptest.NewLogger(t))

	return
}

// FakeDiscordSession grants fixed permissions and records every reply
type FakeDiscordSession struct {
	Permissions    int64
	PermissionsErr error

	mu      sync.Mutex
	Replies []string
}

func (f *FakeDiscordSession) UserChannelPermissions(userID, channelID string, _ ...discordgo.RequestOption) (int64, error) {
	return f.Permissions, f.PermissionsErr
}

func (f *FakeDiscordSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Replies = append(f.Replies, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func GetDiscordHandlerTest(t *testing.T, session *FakeDiscordSession) (m ServiceMocks, handler *handlers.DiscordHandler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m = ServiceMocks{
		ScrumServiceMock: mocks.NewMockScrumService(ctrl),
	}

	handler = handlers.NewDiscord(context.Background(), session, m.ScrumServiceMock, GuildID, "!", zaptest.NewLogger(t))

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"daily-scrum"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
