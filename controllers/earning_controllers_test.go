package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmpro/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Earning{}, &models.Expense{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	router := gin.New()
	earningController := NewEarningController(db)
	expenseController := NewExpenseController(db)

	api := router.Group("/api")
	api.GET("/earnings", earningController.GetEarnings)
	api.POST("/earnings", earningController.CreateEarning)
	api.DELETE("/earnings", earningController.DeleteEarning)
	api.GET("/expenses", expenseController.GetExpenses)
	api.POST("/expenses", expenseController.CreateExpense)
	api.DELETE("/expenses", expenseController.DeleteExpense)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return list
}

func TestEarningLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// create
	w := doRequest(t, router, http.MethodPost, "/api/earnings",
		`{"farmerId":"f1","amount":"500","source":"wheat"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	if created["farmerId"] != "f1" {
		t.Errorf("farmerId = %v, want f1", created["farmerId"])
	}
	if created["amount"] != float64(500) {
		t.Errorf("amount = %v (%T), want 500 as a JSON number", created["amount"], created["amount"])
	}
	if created["source"] != "wheat" {
		t.Errorf("source = %v, want wheat", created["source"])
	}
	id := created["id"].(float64)

	// list
	w = doRequest(t, router, http.MethodGet, "/api/earnings?farmerId=f1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", w.Code)
	}
	list := decodeList(t, w)
	if len(list) != 1 || list[0]["id"].(float64) != id {
		t.Fatalf("GET returned %v, want the created record", list)
	}

	// delete
	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/earnings?farmerId=f1&id=%.0f", id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if msg := decodeBody(t, w)["message"]; msg != "Earning deleted successfully" {
		t.Errorf("message = %v, want %q", msg, "Earning deleted successfully")
	}

	// gone
	w = doRequest(t, router, http.MethodGet, "/api/earnings?farmerId=f1", "")
	if list := decodeList(t, w); len(list) != 0 {
		t.Errorf("GET after delete returned %v, want empty array", list)
	}
}

func TestEarningGetRequiresFarmerID(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/earnings", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if errMsg := decodeBody(t, w)["error"]; errMsg != "farmerId is required" {
		t.Errorf("error = %v, want %q", errMsg, "farmerId is required")
	}
}

func TestEarningCreateRequiredFields(t *testing.T) {
	router := newTestRouter(t)

	bodies := []string{
		`{"amount":"500","source":"wheat"}`,
		`{"farmerId":"f1","source":"wheat"}`,
		`{"farmerId":"f1","amount":"500"}`,
	}
	for _, body := range bodies {
		w := doRequest(t, router, http.MethodPost, "/api/earnings", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %s: status = %d, want 400", body, w.Code)
			continue
		}
		if errMsg := decodeBody(t, w)["error"]; errMsg != "farmerId, amount, and source are required" {
			t.Errorf("POST %s: error = %v", body, errMsg)
		}
	}
}

func TestEarningCreateAcceptsNumericAmount(t *testing.T) {
	router := newTestRouter(t)

	// amount as a JSON number instead of a string
	w := doRequest(t, router, http.MethodPost, "/api/earnings",
		`{"farmerId":"f1","amount":250.5,"source":"milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["amount"]; got != float64(250.5) {
		t.Errorf("amount = %v, want 250.5", got)
	}
}

func TestEarningDeleteValidation(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/api/earnings",
		"/api/earnings?farmerId=f1",
		"/api/earnings?id=1",
	} {
		w := doRequest(t, router, http.MethodDelete, target, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("DELETE %s: status = %d, want 400", target, w.Code)
		}
	}
}

func TestEarningDeleteWrongOwnerIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/earnings",
		`{"farmerId":"f1","amount":"100","source":"wheat"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", w.Code)
	}
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/earnings?farmerId=f2&id=%.0f", id), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("DELETE with wrong owner: status = %d, want 404", w.Code)
	}

	// record is still there for its owner
	w = doRequest(t, router, http.MethodGet, "/api/earnings?farmerId=f1", "")
	if list := decodeList(t, w); len(list) != 1 {
		t.Errorf("record missing after failed delete: %v", list)
	}
}
