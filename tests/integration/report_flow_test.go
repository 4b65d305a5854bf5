package integration

import (
	"net/http"
	"strings"
	"testing"
)

func TestReportFlow_MonthlySummary(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "report@test.com", "password123")

	rec := app.request("POST", "/api/v1/budget", currentPeriodBody(100000), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	for _, body := range []string{
		`{"amount_cents":42000,"category":"Food & Dining"}`,
		`{"amount_cents":15000,"category":"Travel"}`,
	} {
		rec = app.request("POST", "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec = app.request("POST", "/api/v1/incomes",
		`{"source":"Salary","amount_cents":500000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 adding income, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/goals",
		`{"category":"Food & Dining","limit_cents":50000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating goal, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reports/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)

	totals := summary["totals"].(map[string]interface{})
	if totals["expense_cents"].(float64) != 57000 {
		t.Errorf("expected expenses 57000, got %.0f", totals["expense_cents"].(float64))
	}
	if totals["income_cents"].(float64) != 500000 {
		t.Errorf("expected income 500000, got %.0f", totals["income_cents"].(float64))
	}
	if totals["balance_cents"].(float64) != 443000 {
		t.Errorf("expected balance 443000, got %.0f", totals["balance_cents"].(float64))
	}

	breakdown := summary["breakdown"].([]interface{})
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(breakdown))
	}
	top := breakdown[0].(map[string]interface{})
	if top["category"] != "Food & Dining" {
		t.Errorf("expected Food & Dining to lead the breakdown, got %v", top["category"])
	}

	goals := summary["goals"].([]interface{})
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal entry, got %d", len(goals))
	}
	goal := goals[0].(map[string]interface{})
	if goal["spent_cents"].(float64) != 42000 {
		t.Errorf("expected goal spend 42000, got %.0f", goal["spent_cents"].(float64))
	}
	if goal["state"] != "near_limit" {
		t.Errorf("expected near_limit at 84%%, got %v", goal["state"])
	}
}

func TestReportFlow_AssistantAnswers(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "assistant@test.com", "password123")

	rec := app.request("POST", "/api/v1/budget", currentPeriodBody(100000), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/expenses",
		`{"amount_cents":42000,"category":"Food & Dining"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/assistant/ask",
		`{"question":"What is my biggest expense?"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	answer := parseJSON(t, rec)["answer"].(string)
	if !strings.Contains(answer, "Food & Dining") {
		t.Errorf("expected the answer to name the top category, got:\n%s", answer)
	}

	// Identical question, identical answer.
	rec = app.request("POST", "/api/v1/assistant/ask",
		`{"question":"What is my biggest expense?"}`, token)
	if again := parseJSON(t, rec)["answer"].(string); again != answer {
		t.Error("expected a deterministic answer for an unchanged ledger")
	}

	rec = app.request("POST", "/api/v1/assistant/ask", `{"question":""}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty question, got %d", rec.Code)
	}
}

func TestIncomeFlow_CreateListDelete(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	rec := app.request("POST", "/api/v1/incomes",
		`{"source":"Salary","amount_cents":500000,"currency":"EUR","note":"march"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	income := parseJSON(t, rec)["income"].(map[string]interface{})
	if income["currency"] != "EUR" {
		t.Errorf("expected currency EUR, got %v", income["currency"])
	}
	incomeID := income["id"].(float64)

	rec = app.request("POST", "/api/v1/incomes",
		`{"source":"Salary","amount_cents":1000,"currency":"XXX"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown currency, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/incomes", "", token)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 1 {
		t.Errorf("expected 1 income, got %.0f", total)
	}

	rec = app.request("DELETE", "/api/v1/incomes/"+itoa(incomeID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting income, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/incomes", "", token)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 0 {
		t.Errorf("expected no incomes after delete, got %.0f", total)
	}
}

func TestGoalFlow_CRUD(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "goal@test.com", "password123")

	rec := app.request("POST", "/api/v1/goals",
		`{"category":"Travel","limit_cents":30000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	goalID := parseJSON(t, rec)["goal"].(map[string]interface{})["id"].(float64)

	// One goal per category.
	rec = app.request("POST", "/api/v1/goals",
		`{"category":"Travel","limit_cents":99999}`, token)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate goal, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("PUT", "/api/v1/goals/"+itoa(goalID),
		`{"limit_cents":45000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating goal, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["goal"].(map[string]interface{})
	if updated["limit_cents"].(float64) != 45000 {
		t.Errorf("expected limit 45000, got %.0f", updated["limit_cents"].(float64))
	}

	rec = app.request("DELETE", "/api/v1/goals/"+itoa(goalID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting goal, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/goals", "", token)
	goals := parseJSON(t, rec)["goals"].([]interface{})
	if len(goals) != 0 {
		t.Errorf("expected no goals after delete, got %d", len(goals))
	}
}
