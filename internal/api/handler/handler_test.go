package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"hosteltrack/backend/internal/api/handler"
	"hosteltrack/backend/internal/ledger"
	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
	"hosteltrack/backend/internal/session"
	"hosteltrack/backend/internal/store"
)

type testEnv struct {
	Router   *gin.Engine
	Ledger   *ledger.Service
	Sessions *session.Manager
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	repos := repo.New(store.NewMemoryStore(), zap.NewNop())
	led := ledger.NewService(repos, zap.NewNop())
	sessions := session.NewManager("test-secret")
	h := handler.NewHandler(led, sessions, zap.NewNop())

	r := gin.New()
	r.Use(h.ProfileExtractor())
	h.RegisterRoutes(r)

	return &testEnv{Router: r, Ledger: led, Sessions: sessions}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// TestCreateSession verifies a token is issued for a self-declared profile.
func TestCreateSession(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/session", "", gin.H{
		"role": "Student", "block": "B", "room": "B102", "name": "Asha",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token   string          `json:"token"`
		Profile session.Profile `json:"profile"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Student", resp.Profile.Role)
}

// TestCreateSessionRequiresRole verifies the only bound field is enforced.
func TestCreateSessionRequiresRole(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/session", "", gin.H{"block": "B"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCreateComplaintDefaultsFromProfile verifies block and room fall back
// to the caller's token when omitted from the body.
func TestCreateComplaintDefaultsFromProfile(t *testing.T) {
	// Arrange
	env := newTestEnv()
	token, err := env.Sessions.Issue(session.Profile{Role: "Student", Block: "B", Room: "B102"})
	assert.NoError(t, err)

	// Act
	w := env.do(t, http.MethodPost, "/complaints", token, gin.H{
		"category": "Plumbing", "description": "leaking tap",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	var created models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "B", created.Block)
	assert.Equal(t, "B102", created.Room)
	assert.Equal(t, models.StatusSubmitted, created.Status)
	assert.Equal(t, 1, created.Priority)
}

// TestCreateComplaintRequiresFields verifies binding rejects a body without
// category or description.
func TestCreateComplaintRequiresFields(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/complaints", "", gin.H{"block": "B"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestComplaintResolveReopenFlow drives the lifecycle over HTTP: submit,
// resolve, reopen, and checks the escalated priority.
func TestComplaintResolveReopenFlow(t *testing.T) {
	// Arrange
	env := newTestEnv()
	created := env.Ledger.AddComplaint("B", "B102", "Plumbing", "leak", false)

	// Act
	w := env.do(t, http.MethodPatch, "/complaints/"+created.ID+"/status", "", gin.H{"status": "Resolved"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodPost, "/complaints/"+created.ID+"/reopen", "", gin.H{"reason": "still leaking"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Assert
	w = env.do(t, http.MethodGet, "/complaints", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, models.StatusReopened, list[0].Status)
	assert.Equal(t, 2, list[0].Priority)
	assert.Equal(t, "still leaking", list[0].ReopenReason)
}

// TestHousekeepingEndpoint verifies the cross-cutting housekeeping view.
func TestHousekeepingEndpoint(t *testing.T) {
	env := newTestEnv()
	env.Ledger.AddComplaint("B", "B101", "AC", "noisy", false)
	env.Ledger.AddComplaint("C", "C201", "Other", "misc", false)

	w := env.do(t, http.MethodGet, "/complaints/housekeeping", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "AC", list[0].Category)
}

// TestRoomChangeApprovalFlipsRooms verifies the occupancy flip is visible
// as soon as the decision request returns.
func TestRoomChangeApprovalFlipsRooms(t *testing.T) {
	// Arrange
	env := newTestEnv()
	env.Ledger.Repos.ReplaceRooms([]models.Room{
		{Block: "B", Room: "B102", Floor: 1, Status: models.RoomOccupied},
		{Block: "C", Room: "C205", Floor: 2, Status: models.RoomAvailable},
	})

	w := env.do(t, http.MethodPost, "/room-changes", "", gin.H{
		"studentBlock": "B", "studentRoom": "B102",
		"requestedBlock": "C", "requestedRoom": "C205",
		"reason": "closer to classes",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created models.RoomChangeRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Act
	w = env.do(t, http.MethodPatch, "/room-changes/"+created.ID, "", gin.H{"status": "Approved"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Assert
	w = env.do(t, http.MethodGet, "/rooms", "", nil)
	var rooms []models.Room
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	status := make(map[string]models.RoomStatus)
	for _, r := range rooms {
		status[r.Room] = r.Status
	}
	assert.Equal(t, models.RoomAvailable, status["B102"])
	assert.Equal(t, models.RoomOccupied, status["C205"])
}

// TestAvailableRoomsEndpoint verifies the block query filter.
func TestAvailableRoomsEndpoint(t *testing.T) {
	env := newTestEnv()
	env.Ledger.Repos.ReplaceRooms([]models.Room{
		{Block: "B", Room: "B101", Floor: 1, Status: models.RoomAvailable},
		{Block: "C", Room: "C101", Floor: 1, Status: models.RoomAvailable},
	})

	w := env.do(t, http.MethodGet, "/rooms/available?block=C", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 1)
	assert.Equal(t, "C101", rooms[0].Room)
}

// TestSaveInventoryDerivesComplaint verifies the PUT side effect files a
// complaint for a damaged item exactly once.
func TestSaveInventoryDerivesComplaint(t *testing.T) {
	// Arrange
	env := newTestEnv()
	body := gin.H{
		"block": "B", "room": "B102",
		"items": []gin.H{{"name": "Fan", "status": "Damaged"}},
	}

	// Act - save twice
	w := env.do(t, http.MethodPut, "/inventory", "", body)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodPut, "/inventory", "", body)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Assert
	complaints := env.Ledger.Complaints()
	assert.Len(t, complaints, 1)
	assert.Equal(t, "[Inventory] Fan is damaged", complaints[0].Description)

	w = env.do(t, http.MethodGet, "/inventory/issues", "", nil)
	var issues []models.RoomInventory
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	assert.Len(t, issues, 1)
}

// TestGetInventoryNotFound verifies a room with no recorded checklist
// answers 404.
func TestGetInventoryNotFound(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/inventory?block=B&room=B999", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestCleaningFilteredByProfileBlock verifies the schedule narrows to the
// caller's block when a token is presented.
func TestCleaningFilteredByProfileBlock(t *testing.T) {
	// Arrange
	env := newTestEnv()
	env.Ledger.Repos.ReplaceCleaningSchedule([]models.CleaningEntry{
		{ID: "BF1-Monday", Block: "B", Floor: 1, Day: "Monday", Time: "08:00 AM"},
		{ID: "CF1-Monday", Block: "C", Floor: 1, Day: "Monday", Time: "08:00 AM"},
	})
	token, err := env.Sessions.Issue(session.Profile{Role: "Student", Block: "C", Room: "C101"})
	assert.NoError(t, err)

	// Act
	w := env.do(t, http.MethodGet, "/cleaning", token, nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var entries []models.CleaningEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "C", entries[0].Block)
}

// TestVisitorFlow verifies creation and decision over HTTP.
func TestVisitorFlow(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/visitors", "", gin.H{
		"studentName": "Asha", "block": "B", "room": "B102",
		"visitorName": "Ravi", "date": "2026-09-01",
		"startTime": "10:00", "endTime": "12:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created models.VisitorRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RequestPending, created.Status)

	w = env.do(t, http.MethodPatch, "/visitors/"+created.ID, "", gin.H{"status": "Approved"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, models.RequestApproved, env.Ledger.Visitors()[0].Status)
}

// TestLostFoundFlow verifies posting and listing.
func TestLostFoundFlow(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/lostfound", "", gin.H{
		"type": "Found", "description": "ID card", "location": "block C stairs", "date": "2026-08-21",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/lostfound", "", nil)
	var list []models.LostFoundItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, models.TypeFound, list[0].Type)
}
