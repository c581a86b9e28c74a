package controller

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/pkg/assistant"
	"github.com/wallysmart/shopping-assistant/pkg/assistant/intent"
)

func newAssistantTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := intent.NewRouter(rand.New(rand.NewSource(1)), nil)
	composer := assistant.NewComposer(router, nil, nil)
	ctrl := NewAssistantController(composer, repository.NewChatRepository(), repository.NewStoreRepository(), testLogger{})

	engine := gin.New()
	authed := engine.Group("/api/v1/assistant", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})
	authed.POST("/messages", ctrl.SendMessage)
	authed.GET("/messages", ctrl.History)
	authed.DELETE("/messages", ctrl.ClearHistory)
	return engine
}

type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}
func (testLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestSendMessageApplePie(t *testing.T) {
	engine := newAssistantTestRouter()

	body := `{"content":"I need to make apple pie today, list items"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.ConversationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.UserMessage.Type != "user" {
		t.Errorf("user message type = %q", resp.UserMessage.Type)
	}
	if resp.AIMessage.Type != "ai" {
		t.Errorf("ai message type = %q", resp.AIMessage.Type)
	}
	if resp.AIMessage.Source != "local" {
		t.Errorf("source = %q, want local", resp.AIMessage.Source)
	}
	if len(resp.AIMessage.ProductCards) != 5 {
		t.Errorf("product cards = %d, want 5", len(resp.AIMessage.ProductCards))
	}
}

func TestSendMessageTimeframeNeedsSubject(t *testing.T) {
	engine := newAssistantTestRouter()

	body := `{"content":"past week please","timeframe":"week"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSendMessageEmptyContentRejected(t *testing.T) {
	engine := newAssistantTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHistoryAndClear(t *testing.T) {
	engine := newAssistantTestRouter()

	body := `{"content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/messages", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var history dto.HistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatal(err)
	}
	// greeting + user message + assistant reply
	if history.Total != 3 {
		t.Errorf("total = %d, want 3", history.Total)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/assistant/messages", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/messages", nil))
	var cleared dto.HistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &cleared); err != nil {
		t.Fatal(err)
	}
	if cleared.Total != 1 {
		t.Errorf("total after clear = %d, want 1", cleared.Total)
	}
}
