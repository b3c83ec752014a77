package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/echoforge/internal/catalog"
	"github.com/talgya/echoforge/internal/game"
)

const testAdminKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	clock := game.NewFakeClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	session := game.NewSession(catalog.Default(), clock, game.NewRNG(1), nil)
	return &Server{Session: session, AdminKey: testAdminKey}
}

type commandResponse struct {
	OK     bool   `json:"ok"`
	Output string `json:"output"`
	Error  string `json:"error"`
}

func postCommand(t *testing.T, s *Server, token, command string) (*httptest.ResponseRecorder, commandResponse) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"command": command})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command", bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	limiter := NewRateLimiter(1000, time.Minute)
	s.adminOnly(RateLimitMiddleware(limiter, s.handleCommand))(rec, req)

	var res commandResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestCommand_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	rec, _ := postCommand(t, s, "", "give gold 100")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = postCommand(t, s, "wrong-key", "give gold 100")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCommand_DisabledWithoutAdminKey(t *testing.T) {
	s := newTestServer(t)
	s.AdminKey = ""

	rec, _ := postCommand(t, s, "anything", "give gold 100")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommand_CreateAndGive(t *testing.T) {
	s := newTestServer(t)

	rec, res := postCommand(t, s, testAdminKey, "create human Aldric")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.OK)
	assert.Contains(t, res.Output, "Aldric")

	_, res = postCommand(t, s, testAdminKey, "give gold 5000")
	assert.True(t, res.OK)

	st := s.Session.Snapshot()
	assert.Equal(t, float64(5050), st.Resources[catalog.ResourceGold])

	_, res = postCommand(t, s, testAdminKey, "give plutonium 5")
	assert.False(t, res.OK)
}

func TestCommand_BuildAndSetLevel(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create dwarf Borin")

	_, res := postCommand(t, s, testAdminKey, "build lumber_mill 3")
	require.True(t, res.OK, res.Error)
	assert.Equal(t, 3, s.Session.Snapshot().Buildings["lumber_mill"])

	_, res = postCommand(t, s, testAdminKey, "setlevel 50")
	require.True(t, res.OK)
	assert.Equal(t, 50, s.Session.Snapshot().Player.Level)

	// Level gates now open for high tier buildings.
	postCommand(t, s, testAdminKey, "give gold 100000")
	postCommand(t, s, testAdminKey, "give stone 5000")
	postCommand(t, s, testAdminKey, "give iron 5000")
	_, res = postCommand(t, s, testAdminKey, "build mages_tower")
	assert.True(t, res.OK, res.Error)
}

func TestCommand_QuestFlow(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create elf")
	postCommand(t, s, testAdminKey, "give gold 100")

	_, res := postCommand(t, s, testAdminKey, "quest complete quest_1")
	require.True(t, res.OK, res.Error)
	assert.Contains(t, s.Session.Snapshot().Quests.Completed, "quest_1")

	_, res = postCommand(t, s, testAdminKey, "quest complete quest_1")
	assert.False(t, res.OK)
}

func TestCommand_Unlock(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Test")

	// Bypasses the level gate and pays nothing.
	_, res := postCommand(t, s, testAdminKey, "unlock quest quest_4")
	require.True(t, res.OK, res.Error)
	st := s.Session.Snapshot()
	assert.Contains(t, st.Quests.Completed, "quest_4")
	assert.Equal(t, float64(catalog.StartingGold), st.Resources[catalog.ResourceGold])

	_, res = postCommand(t, s, testAdminKey, "unlock quest quest_4")
	assert.False(t, res.OK)

	_, res = postCommand(t, s, testAdminKey, "unlock achievement first_fortune")
	require.True(t, res.OK, res.Error)
	assert.Contains(t, s.Session.Snapshot().Achievements.Unlocked, "first_fortune")

	_, res = postCommand(t, s, testAdminKey, "unlock spell fireball")
	assert.False(t, res.OK)
}

func TestCommand_PrestigeRequiresEligibility(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Test")

	_, res := postCommand(t, s, testAdminKey, "ascend")
	assert.False(t, res.OK)

	postCommand(t, s, testAdminKey, "setlevel 100")
	postCommand(t, s, testAdminKey, "give gold 1000000")
	_, res = postCommand(t, s, testAdminKey, "ascend")
	assert.True(t, res.OK, res.Error)
	assert.Equal(t, 1, s.Session.Snapshot().Ascension.Count)
}

func TestCommand_Timewarp(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Test")
	postCommand(t, s, testAdminKey, "build lumber_mill")

	_, res := postCommand(t, s, testAdminKey, "timewarp 600")
	require.True(t, res.OK, res.Error)
	assert.InDelta(t, 600, s.Session.Snapshot().Resources[catalog.ResourceWood], 1e-6)
}

func TestCommand_Wipe(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Test")
	postCommand(t, s, testAdminKey, "give gold 9999")

	_, res := postCommand(t, s, testAdminKey, "wipe")
	require.True(t, res.OK)

	st := s.Session.Snapshot()
	assert.False(t, st.Clock.Initialized)
	assert.Equal(t, float64(catalog.StartingGold), st.Resources[catalog.ResourceGold])
}

func TestCommand_UnknownAndMalformed(t *testing.T) {
	s := newTestServer(t)

	_, res := postCommand(t, s, testAdminKey, "frobnicate")
	assert.False(t, res.OK)

	body := bytes.NewReader([]byte("{not json"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command", body)
	req.Header.Set("Authorization", "Bearer "+testAdminKey)
	rec := httptest.NewRecorder()
	s.handleCommand(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicEndpoints(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Aldric")

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "Aldric", status["name"])
	assert.Equal(t, true, status["character_created"])

	rec = httptest.NewRecorder()
	s.handleState(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var st game.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "Aldric", st.Player.Name)

	rec = httptest.NewRecorder()
	s.handleQuests(rec, httptest.NewRequest(http.MethodGet, "/api/v1/quests", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusReportsChallengeTiers(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Aldric")

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	total := catalog.Default().TotalChallengeTiers()
	assert.Equal(t, fmt.Sprintf("0/%d", total), status["challenge_tiers"])
}

func TestBuildingsEndpoint(t *testing.T) {
	s := newTestServer(t)
	postCommand(t, s, testAdminKey, "create human Aldric")
	postCommand(t, s, testAdminKey, "build lumber_mill 2")

	rec := httptest.NewRecorder()
	s.handleBuildings(rec, httptest.NewRequest(http.MethodGet, "/api/v1/buildings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	type buildingEntry struct {
		ID            string             `json:"id"`
		Owned         int                `json:"owned"`
		NextCost      map[string]float64 `json:"next_cost"`
		MaxAffordable int                `json:"max_affordable"`
	}
	var buildings []buildingEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buildings))
	require.Len(t, buildings, len(catalog.Default().Buildings))

	var mill *buildingEntry
	for i := range buildings {
		if buildings[i].ID == "lumber_mill" {
			mill = &buildings[i]
		}
	}
	require.NotNil(t, mill)
	assert.Equal(t, 2, mill.Owned)
	// Third unit of a 10-gold, x1.15 building.
	assert.Equal(t, 13.0, mill.NextCost["gold"])
	// 50 - (10 + 11) = 29 gold left, covering two more units (13 + 15).
	assert.Equal(t, 2, mill.MaxAffordable)
}

func TestRateLimiter_Blocks(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.Greater(t, rl.RetryAfter("10.0.0.1"), 0)

	// Other IPs are unaffected.
	assert.True(t, rl.Allow("10.0.0.2"))
}
