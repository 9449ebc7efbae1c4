// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/insights/config"
	"github.com/finance-tracker/insights/internal/application/adapter"
	infracache "github.com/finance-tracker/insights/internal/infra/cache"
	"github.com/finance-tracker/insights/internal/infra/db"
	"github.com/finance-tracker/insights/internal/infra/dependency"
	"github.com/finance-tracker/insights/internal/integration/adapters"
	"github.com/finance-tracker/insights/internal/integration/persistence"
	"github.com/finance-tracker/insights/internal/integration/persistence/model"
	"github.com/finance-tracker/insights/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state of a single scenario.
type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *redis.Client
	timeMock      *mock.Time
	tokenService  *adapters.TokenService
	accessToken   string
	currentUserID uuid.UUID
	insightID     uuid.UUID

	transactions  adapter.TransactionRepository
	categories    adapter.CategoryRepository
	goals         adapter.GoalRepository
	budget        adapter.BudgetRepository
	recurring     adapter.RecurringItemRepository
	sharedExpense adapter.SharedExpenseRepository
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	injector   *dependency.Injector
	testDB     *mock.Db
	testRedis  *redis.Client
	testClock  = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// startServer wires the application once against the sqlite and miniredis mocks.
func startServer() {
	serverInit.Do(func() {
		testDB = mock.NewDb("finance_insights", model.All())
		testRedis = mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Insights.MemoryStore = false

		injector = dependency.NewInjector(cfg, db.NewDatabaseFromGorm(testDB.DbConn), infracache.NewRedisFromClient(testRedis), testClock.Now)
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		uri:           server.URL,
		client:        &http.Client{Timeout: 10 * time.Second},
		db:            testDB,
		redis:         testRedis,
		timeMock:      testClock,
		tokenService:  injector.TokenService,
		transactions:  persistence.NewTransactionRepository(testDB.DbConn),
		categories:    persistence.NewCategoryRepository(testDB.DbConn),
		goals:         persistence.NewGoalRepository(testDB.DbConn),
		budget:        persistence.NewBudgetRepository(testDB.DbConn),
		recurring:     persistence.NewRecurringItemRepository(testDB.DbConn),
		sharedExpense: persistence.NewSharedExpenseRepository(testDB.DbConn),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^I am authenticated as a new user$`, test.iAmAuthenticatedAsANewUser)

	// Financial data steps
	ctx.Given(`^my monthly budget is "([^"]*)"$`, test.myMonthlyBudgetIs)
	ctx.Given(`^I have an? "(income|expense)" transaction of "([^"]*)" (\d+) days ago$`, test.iHaveATransactionDaysAgo)
	ctx.Given(`^I have an? "(income|expense)" transaction of "([^"]*)" without a date$`, test.iHaveATransactionWithoutADate)
	ctx.Given(`^I have a goal "([^"]*)" of "([^"]*)" with "([^"]*)" saved due in (-?\d+) days$`, test.iHaveAGoalDueInDays)
	ctx.Given(`^I have a recurring "([^"]*)" item "([^"]*)" of "([^"]*)" due in (-?\d+) days$`, test.iHaveARecurringItemDueInDays)
	ctx.Given(`^"([^"]*)" owes me "([^"]*)" since (\d+) days ago$`, test.owesMeSinceDaysAgo)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response should list an insight of type "([^"]*)"$`, test.theResponseShouldListAnInsightOfType)
	ctx.Then(`^the response should not list an insight of type "([^"]*)"$`, test.theResponseShouldNotListAnInsightOfType)
	ctx.Then(`^the captured insight should have "([^"]*)" set to "([^"]*)"$`, test.theCapturedInsightShouldHaveSetTo)
	ctx.Then(`^the captured insight should not be listed$`, test.theCapturedInsightShouldNotBeListed)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.insightID = uuid.Nil
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}
