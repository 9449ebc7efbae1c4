package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return fmt.Errorf("test server is not running: %w", err)
	}
	defer resp.Body.Close()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) iAmAuthenticatedAsANewUser() error {
	t.currentUserID = uuid.New()

	token, err := t.tokenService.GenerateAccessToken(context.Background(), t.currentUserID, "")
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) myMonthlyBudgetIs(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	return t.budget.SetMonthlyBudget(context.Background(), t.currentUserID, value)
}

func (t *testContext) iHaveATransactionDaysAgo(transactionType, amount string, days int) error {
	return t.createTransaction(transactionType, amount, t.timeMock.Now().AddDate(0, 0, -days))
}

func (t *testContext) iHaveATransactionWithoutADate(transactionType, amount string) error {
	return t.createTransaction(transactionType, amount, time.Time{})
}

func (t *testContext) createTransaction(transactionType, amount string, date time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	tx := entity.NewTransaction(t.currentUserID, entity.TransactionType(transactionType), value, nil, date, nil)
	return t.transactions.Create(context.Background(), tx)
}

func (t *testContext) iHaveAGoalDueInDays(name, target, current string, days int) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return err
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return err
	}

	deadline := t.timeMock.Now().AddDate(0, 0, days)
	goal := entity.NewGoal(t.currentUserID, name, targetAmount, currentAmount, &deadline)
	return t.goals.Create(context.Background(), goal)
}

func (t *testContext) iHaveARecurringItemDueInDays(frequency, description, amount string, days int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	item := entity.NewRecurringItem(
		t.currentUserID,
		description,
		value,
		entity.RecurringFrequency(frequency),
		t.timeMock.Now().AddDate(0, 0, days),
	)
	return t.recurring.Create(context.Background(), item)
}

func (t *testContext) owesMeSinceDaysAgo(name, amount string, days int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	participant := &entity.SharedExpenseParticipant{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		Name:       name,
		AmountOwed: value,
		CreatedAt:  t.timeMock.Now().AddDate(0, 0, -days),
	}
	return t.sharedExpense.CreateParticipant(context.Background(), participant)
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) replacePlaceholders(content string) string {
	if t.insightID != uuid.Nil {
		content = strings.ReplaceAll(content, "{{insight_id}}", t.insightID.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the first insight of a refresh for later requests
	if method == http.MethodPost && strings.HasSuffix(path, "/refresh") {
		if idStr, ok := getFieldValue(responseBody, "insights.0.id").(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.insightID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected to be absent, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) listedInsights() ([]map[string]any, error) {
	body, err := t.jsonBody()
	if err != nil {
		return nil, err
	}

	raw, ok := body["insights"].([]any)
	if !ok {
		return nil, fmt.Errorf("response has no insights list: %v", body)
	}

	insights := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if insight, ok := item.(map[string]any); ok {
			insights = append(insights, insight)
		}
	}
	return insights, nil
}

func (t *testContext) theResponseShouldListAnInsightOfType(insightType string) error {
	insights, err := t.listedInsights()
	if err != nil {
		return err
	}

	for _, insight := range insights {
		if insight["type"] == insightType {
			return nil
		}
	}
	return fmt.Errorf("no insight of type '%s' in %v", insightType, insights)
}

func (t *testContext) theResponseShouldNotListAnInsightOfType(insightType string) error {
	insights, err := t.listedInsights()
	if err != nil {
		return err
	}

	for _, insight := range insights {
		if insight["type"] == insightType {
			return fmt.Errorf("unexpected insight of type '%s': %v", insightType, insight)
		}
	}
	return nil
}

func (t *testContext) capturedInsight() (map[string]any, error) {
	if t.insightID == uuid.Nil {
		return nil, errors.New("no insight captured")
	}

	insights, err := t.listedInsights()
	if err != nil {
		return nil, err
	}

	for _, insight := range insights {
		if insight["id"] == t.insightID.String() {
			return insight, nil
		}
	}
	return nil, nil
}

func (t *testContext) theCapturedInsightShouldHaveSetTo(field, expectedValue string) error {
	insight, err := t.capturedInsight()
	if err != nil {
		return err
	}
	if insight == nil {
		return fmt.Errorf("insight %s not listed", t.insightID)
	}

	actualValue := fmt.Sprintf("%v", getFieldValue(insight, field))
	if actualValue != expectedValue {
		return fmt.Errorf("insight field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theCapturedInsightShouldNotBeListed() error {
	insight, err := t.capturedInsight()
	if err != nil {
		return err
	}
	if insight != nil {
		return fmt.Errorf("insight %s is still listed: %v", t.insightID, insight)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
