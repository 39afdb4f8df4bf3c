package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerBudgetingSteps registers the envelope-budgeting domain steps.
func registerBudgetingSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am signed up as "([^"]*)"$`, iAmSignedUpAs)
	ctx.Step(`^I create a "([^"]*)" account named "([^"]*)" with starting balance (-?\d+(?:\.\d+)?)$`, iCreateAnAccount)
	ctx.Step(`^I create a category group named "([^"]*)"$`, iCreateACategoryGroup)
	ctx.Step(`^I create a category "([^"]*)" in group "([^"]*)"$`, iCreateACategory)
	ctx.Step(`^I spend (-?\d+(?:\.\d+)?) from "([^"]*)" on "([^"]*)" on day (\d+)$`, iSpendOnCategory)
	ctx.Step(`^I assign (-?\d+(?:\.\d+)?) to "([^"]*)" for "([^"]*)"$`, iAssignToCategory)
	ctx.Step(`^I move (-?\d+(?:\.\d+)?) from "([^"]*)" to "([^"]*)"$`, iMoveMoney)
	ctx.Step(`^I fetch the month view for "([^"]*)"$`, iFetchTheMonthView)
	ctx.Step(`^the ready to assign should be (-?\d+(?:\.\d+)?)$`, theReadyToAssignShouldBe)
	ctx.Step(`^the category "([^"]*)" should show assigned (-?\d+(?:\.\d+)?) activity (-?\d+(?:\.\d+)?) available (-?\d+(?:\.\d+)?)$`, theCategoryShouldShow)
	ctx.Step(`^the category "([^"]*)" should be overspent with "([^"]*)"$`, theCategoryShouldBeOverspent)
	ctx.Step(`^I mark every transaction on "([^"]*)" as cleared$`, iMarkEveryTransactionCleared)
	ctx.Step(`^I reconcile "([^"]*)" at a stated balance of (-?\d+(?:\.\d+)?)$`, iReconcileAccount)
	ctx.Step(`^the account "([^"]*)" should have cleared balance (-?\d+(?:\.\d+)?)$`, theAccountShouldHaveClearedBalance)
}

const testPassword = "correct-horse-battery"

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func iAmSignedUpAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	name := strings.SplitN(email, "@", 2)[0]
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     name,
		"password": testPassword,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}

	for path, target := range map[string]*string{
		"access_token":  &tc.accessToken,
		"refresh_token": &tc.refreshToken,
	} {
		value, err := tc.field(path)
		if err != nil {
			return err
		}
		*target, _ = value.(string)
	}

	budgetID, err := tc.field("budget.id")
	if err != nil {
		return err
	}
	tc.ids["budget"], _ = budgetID.(string)
	return nil
}

func iCreateAnAccount(ctx context.Context, accountType, name string, balance float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"name":             name,
		"type":             accountType,
		"starting_balance": balance,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/budgets/{budget}/accounts", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("account creation failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}

	id, err := tc.field("id")
	if err != nil {
		return err
	}
	tc.ids["account:"+name], _ = id.(string)

	// Credit accounts come back with their linked payment category. It is
	// named after the account, register it under that name.
	if catID, err := tc.field("payment_category_id"); err == nil {
		tc.ids["category:"+name], _ = catID.(string)
	}
	return nil
}

func iCreateACategoryGroup(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{"name": name})
	if err := tc.doRequest(http.MethodPost, "/api/v1/budgets/{budget}/category-groups", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("group creation failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}

	id, err := tc.field("id")
	if err != nil {
		return err
	}
	tc.ids["group:"+name], _ = id.(string)
	return nil
}

func iCreateACategory(ctx context.Context, name, group string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{
		"group_id": tc.ids["group:"+group],
		"name":     name,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/budgets/{budget}/categories", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("category creation failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}

	id, err := tc.field("id")
	if err != nil {
		return err
	}
	tc.ids["category:"+name], _ = id.(string)
	return nil
}

func iSpendOnCategory(ctx context.Context, amount float64, account, category string, day int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"account_id":  tc.ids["account:"+account],
		"category_id": tc.ids["category:"+category],
		"date":        fmt.Sprintf("%s-%02d", tc.thisMonth, day),
		"amount":      amount,
		"payee":       "Corner Store",
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/budgets/{budget}/transactions", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iAssignToCategory(ctx context.Context, amount float64, category, month string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]float64{"amount": amount})
	endpoint := fmt.Sprintf("/api/v1/budgets/{budget}/months/%s/categories/{category:%s}",
		tc.expand(month), category)
	if err := tc.doRequest(http.MethodPut, endpoint, body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("assignment failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iMoveMoney(ctx context.Context, amount float64, source, target string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"source_category_id": tc.ids["category:"+source],
		"target_category_id": tc.ids["category:"+target],
		"amount":             amount,
	})
	endpoint := "/api/v1/budgets/{budget}/months/" + tc.thisMonth + "/moves"
	if err := tc.doRequest(http.MethodPost, endpoint, body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("move failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iFetchTheMonthView(ctx context.Context, month string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	endpoint := "/api/v1/budgets/{budget}/months/" + tc.expand(month)
	if err := tc.doRequest(http.MethodGet, endpoint, nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("month view failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theReadyToAssignShouldBe(ctx context.Context, expected float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.field("ready_to_assign")
	if err != nil {
		return err
	}
	actual, _ := value.(float64)
	if !floatsEqual(actual, expected) {
		return fmt.Errorf("expected ready to assign %v, got %v", expected, actual)
	}
	return nil
}

// categoryRow finds a category by name in the last fetched month view.
func (tc *TestContext) categoryRow(name string) (map[string]interface{}, error) {
	value, err := tc.field("categories")
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("categories is not an array")
	}
	for _, raw := range rows {
		row, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if row["name"] == name {
			return row, nil
		}
	}
	return nil, fmt.Errorf("category %q not found in month view: %s", name, string(tc.responseBody))
}

func theCategoryShouldShow(ctx context.Context, name string, assigned, activity, available float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	row, err := tc.categoryRow(name)
	if err != nil {
		return err
	}

	for field, expected := range map[string]float64{
		"assigned":  assigned,
		"activity":  activity,
		"available": available,
	} {
		actual, _ := row[field].(float64)
		if !floatsEqual(actual, expected) {
			return fmt.Errorf("category %q: expected %s %v, got %v", name, field, expected, actual)
		}
	}
	return nil
}

func theCategoryShouldBeOverspent(ctx context.Context, name, kind string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	row, err := tc.categoryRow(name)
	if err != nil {
		return err
	}
	if actual, _ := row["overspending"].(string); actual != kind {
		return fmt.Errorf("category %q: expected overspending %q, got %q", name, kind, actual)
	}
	return nil
}

func iMarkEveryTransactionCleared(ctx context.Context, account string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	endpoint := fmt.Sprintf("/api/v1/budgets/{budget}/accounts/{account:%s}/transactions", account)
	if err := tc.doRequest(http.MethodGet, endpoint, nil); err != nil {
		return err
	}
	value, err := tc.field("transactions")
	if err != nil {
		return err
	}
	rows, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("transactions is not an array")
	}

	patch, _ := json.Marshal(map[string]string{"cleared": "cleared"})
	for _, raw := range rows {
		row, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if row["cleared"] != "uncleared" {
			continue
		}
		id, _ := row["id"].(string)
		err := tc.doRequest(http.MethodPatch, "/api/v1/budgets/{budget}/transactions/"+id, patch)
		if err != nil {
			return err
		}
		if tc.response.StatusCode != http.StatusOK {
			return fmt.Errorf("clearing transaction %s failed with status %d: %s",
				id, tc.response.StatusCode, string(tc.responseBody))
		}
	}
	return nil
}

func iReconcileAccount(ctx context.Context, account string, stated float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]float64{"stated_balance": stated})
	endpoint := fmt.Sprintf("/api/v1/budgets/{budget}/accounts/{account:%s}/reconcile", account)
	if err := tc.doRequest(http.MethodPost, endpoint, body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("reconciliation failed with status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theAccountShouldHaveClearedBalance(ctx context.Context, account string, expected float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.doRequest(http.MethodGet, "/api/v1/budgets/{budget}/accounts", nil); err != nil {
		return err
	}
	value, err := tc.field("accounts")
	if err != nil {
		return err
	}
	rows, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("accounts is not an array")
	}
	for _, raw := range rows {
		row, ok := raw.(map[string]interface{})
		if !ok || row["name"] != account {
			continue
		}
		actual, _ := row["cleared_balance"].(float64)
		if !floatsEqual(actual, expected) {
			return fmt.Errorf("account %q: expected cleared balance %v, got %v", account, expected, actual)
		}
		return nil
	}
	return fmt.Errorf("account %q not found in list: %s", account, string(tc.responseBody))
}
