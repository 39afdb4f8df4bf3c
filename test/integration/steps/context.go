// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/camilopiedra92/YNAB-Clone-sub004/config"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/infra/dependency"
	"github.com/camilopiedra92/YNAB-Clone-sub004/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Auth
	accessToken  string
	refreshToken string

	// ids maps placeholder names ("budget", "account:Checking",
	// "category:Groceries") to the uuids the API handed back.
	ids map[string]string

	// Months the scenario runs against, derived from the pinned clock.
	thisMonth string
	nextMonth string
	prevMonth string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter, scenarios log in repeatedly.
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		redisClient := mock.NewRedis()
		if err := mock.ClearDb(db); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		// Auto-dated rows (opening balances, reconciliation adjustments)
		// use the wall clock, so the budget clock is pinned to the first
		// of the real current month to keep them in the viewed month.
		first := firstOfCurrentMonth()
		injector := dependency.NewInjector(
			config.Load(), db, redisClient,
			budget.FixedClock(first.Format("2006-01")),
		)

		tc := &TestContext{
			ids:       make(map[string]string),
			thisMonth: first.Format("2006-01"),
			nextMonth: first.AddDate(0, 1, 0).Format("2006-01"),
			prevMonth: first.AddDate(0, -1, 0).Format("2006-01"),
		}
		tc.server = httptest.NewServer(injector.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerBudgetingSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I refresh the session$`, iRefreshTheSession)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response error code should be "([^"]*)"$`, theResponseErrorCodeShouldBe)
}

func firstOfCurrentMonth() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

var placeholderPattern = regexp.MustCompile(`\{[^{}]+\}`)

// expand substitutes {budget}, {account:Name}, {category:Name},
// {group:Name}, {this_month}, {next_month}, {prev_month} and
// {refresh_token} placeholders with values captured earlier in the scenario.
func (tc *TestContext) expand(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[1 : len(match)-1]
		switch key {
		case "this_month":
			return tc.thisMonth
		case "next_month":
			return tc.nextMonth
		case "prev_month":
			return tc.prevMonth
		case "refresh_token":
			return tc.refreshToken
		}
		if id, ok := tc.ids[key]; ok {
			return id
		}
		return match
	})
}

// doRequest sends an HTTP request against the scenario's server, attaching
// the captured access token, and records the response for later assertions.
func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// field walks a dotted path ("budget.name", "adjustment.amount") through the
// last JSON response body.
func (tc *TestContext) field(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		obj, ok := data.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field %q is not an object", path)
		}
		data, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
		}
	}
	return data, nil
}

// Step implementations

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, []byte(tc.expand(body.Content)))
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func iRefreshTheSession(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body, _ := json.Marshal(map[string]string{"refresh_token": tc.refreshToken})
	return tc.doRequest(http.MethodPost, "/api/v1/auth/refresh", body)
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.field(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if num, ok := value.(float64); ok {
		actual = strconv.FormatFloat(num, 'f', -1, 64)
	}
	if actual != tc.expand(expected) {
		return fmt.Errorf("field %q expected %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.field(path)
	return err
}

func theResponseErrorCodeShouldBe(ctx context.Context, code string) error {
	return theResponseFieldShouldBe(ctx, "code", code)
}
