package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dolarasia/dolarasia/pkg/app"
	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/pkg/repository/transaction"
	"github.com/dolarasia/dolarasia/pkg/repository/user"
	"github.com/dolarasia/dolarasia/pkg/service/auth"
	"github.com/dolarasia/dolarasia/pkg/session"
	"github.com/dolarasia/dolarasia/pkg/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type APITestSuite struct {
	suite.Suite
	app      *app.App
	fiberApp *fiber.App
}

func (s *APITestSuite) SetupTest() {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	users := user.New(store, nil)
	transactions := transaction.New(store, nil)

	sessions, err := session.NewHolder(ctx, store, nil)
	s.Require().NoError(err)

	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 3000},
		Log:       &config.Log{},
		Storage:   &config.Storage{Dir: s.T().TempDir()},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}

	deps := &app.Deps{
		Store:        store,
		Users:        users,
		Transactions: transactions,
		Sessions:     sessions,
	}
	s.app = app.New(deps, cfg)
	s.Require().NoError(s.app.AuthService.EnsureAdmin(ctx))

	s.fiberApp = SetupApp(s.app)
}

func (s *APITestSuite) makeRequest(method, target, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.fiberApp.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

func (s *APITestSuite) decodeData(resp *http.Response, out any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

func (s *APITestSuite) registerUser(email string) string {
	body := fmt.Sprintf(
		`{"email":%q,"password":"secret123","fullName":"Test User","phone":"+621","address":"Jakarta","idNumber":"ID-1"}`,
		email,
	)
	resp := s.makeRequest("POST", "/auth/register", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	s.decodeData(resp, &data)
	s.Require().NotEmpty(data.Token)
	return data.Token
}

func (s *APITestSuite) loginAdmin() string {
	body := fmt.Sprintf(`{"email":%q,"password":"admin123"}`, auth.AdminEmail)
	resp := s.makeRequest("POST", "/auth/login", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	s.decodeData(resp, &data)
	return data.Token
}

func (s *APITestSuite) TestHealthRoute() {
	resp := s.makeRequest("GET", "/", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestRatesRoute_Public() {
	resp := s.makeRequest("GET", "/api/rates", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var board []struct {
		Currency string  `json:"currency"`
		BuyRate  float64 `json:"buyRate"`
		SellRate float64 `json:"sellRate"`
	}
	s.decodeData(resp, &board)
	s.Require().Len(board, 6)
	s.Assert().Equal("USD", board[0].Currency)
	s.Assert().Greater(board[0].BuyRate, board[0].SellRate)
}

func (s *APITestSuite) TestRegisterRoute_DuplicateEmail() {
	s.registerUser("dup@example.com")
	body := `{"email":"dup@example.com","password":"other456","fullName":"Other","phone":"+622","address":"Bandung","idNumber":"ID-2"}`
	resp := s.makeRequest("POST", "/auth/register", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *APITestSuite) TestRegisterRoute_BadRequest() {
	resp := s.makeRequest("POST", "/auth/register", `{"email":"not-an-email"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestLoginRoute_WrongPassword() {
	s.registerUser("login@example.com")
	resp := s.makeRequest("POST", "/auth/login", `{"email":"login@example.com","password":"wrong"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestLoginRoute_AdminBootstrap() {
	token := s.loginAdmin()
	s.Assert().NotEmpty(token)
}

func (s *APITestSuite) TestExchangeRoute_RequiresToken() {
	resp := s.makeRequest("POST", "/api/exchange", `{"type":"buy","currency":"USD","amount":100000,"paymentMethod":"cash"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestExchangeRoute_CreatesPendingTransaction() {
	token := s.registerUser("buyer@example.com")
	resp := s.makeRequest("POST", "/api/exchange",
		`{"type":"buy","currency":"USD","amount":1000000,"paymentMethod":"bank"}`, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var tx struct {
		Type         string  `json:"type"`
		FromCurrency string  `json:"fromCurrency"`
		ToCurrency   string  `json:"toCurrency"`
		Amount       float64 `json:"amount"`
		ExchangeRate float64 `json:"exchangeRate"`
		TotalAmount  float64 `json:"totalAmount"`
		Status       string  `json:"status"`
	}
	s.decodeData(resp, &tx)
	s.Assert().Equal("buy", tx.Type)
	s.Assert().Equal("IDR", tx.FromCurrency)
	s.Assert().Equal("USD", tx.ToCurrency)
	s.Assert().Equal("pending", tx.Status)
	// Total must equal the applied rate's conversion even though the rate
	// itself carries jitter.
	s.Assert().InDelta(tx.Amount/tx.ExchangeRate, tx.TotalAmount, 0.005)

	listResp := s.makeRequest("GET", "/api/transactions", "", token)
	defer listResp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, listResp.StatusCode)
	var txs []json.RawMessage
	s.decodeData(listResp, &txs)
	s.Assert().Len(txs, 1)
}

func (s *APITestSuite) TestExchangeRoute_BelowMinimum() {
	token := s.registerUser("small@example.com")
	resp := s.makeRequest("POST", "/api/exchange",
		`{"type":"buy","currency":"USD","amount":49999,"paymentMethod":"cash"}`, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *APITestSuite) TestExchangeRoute_UnknownCurrency() {
	token := s.registerUser("unknown@example.com")
	resp := s.makeRequest("POST", "/api/exchange",
		`{"type":"sell","currency":"XXX","amount":100,"paymentMethod":"cash"}`, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Assert().Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *APITestSuite) TestPreviewRoute_RecordsNothing() {
	token := s.registerUser("preview@example.com")
	resp := s.makeRequest("GET", "/api/exchange/preview?type=sell&currency=USD&amount=100", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	listResp := s.makeRequest("GET", "/api/transactions", "", token)
	defer listResp.Body.Close() //nolint:errcheck
	var txs []json.RawMessage
	s.decodeData(listResp, &txs)
	s.Assert().Empty(txs)
}

func (s *APITestSuite) TestAdminRoutes_ForbiddenForCustomers() {
	token := s.registerUser("customer@example.com")
	for _, target := range []string{"/api/admin/transactions", "/api/admin/users", "/api/admin/stats"} {
		resp := s.makeRequest("GET", target, "", token)
		s.Assert().Equal(fiber.StatusForbidden, resp.StatusCode, target)
		resp.Body.Close() //nolint:errcheck
	}
}

func (s *APITestSuite) TestAdminStatsRoute() {
	userToken := s.registerUser("trader@example.com")
	resp := s.makeRequest("POST", "/api/exchange",
		`{"type":"sell","currency":"USD","amount":100,"paymentMethod":"cash"}`, userToken)
	resp.Body.Close() //nolint:errcheck

	adminToken := s.loginAdmin()
	statsResp := s.makeRequest("GET", "/api/admin/stats", "", adminToken)
	defer statsResp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, statsResp.StatusCode)

	var stats struct {
		TotalUsers          int     `json:"totalUsers"`
		TotalTransactions   int     `json:"totalTransactions"`
		PendingTransactions int     `json:"pendingTransactions"`
		VolumeIDR           float64 `json:"volumeIdr"`
	}
	s.decodeData(statsResp, &stats)
	s.Assert().Equal(2, stats.TotalUsers) // admin + trader
	s.Assert().Equal(1, stats.TotalTransactions)
	s.Assert().Equal(1, stats.PendingTransactions)
	s.Assert().Greater(stats.VolumeIDR, 0.0)
}

func (s *APITestSuite) TestAdminUsersRoute_IncludesStoredRecords() {
	s.registerUser("dumped@example.com")
	adminToken := s.loginAdmin()

	resp := s.makeRequest("GET", "/api/admin/users", "", adminToken)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var records []struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	s.decodeData(resp, &records)
	s.Require().Len(records, 2)
	s.Assert().Equal("secret123", records[1].Password)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
