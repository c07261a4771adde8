package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdash/base/ctx"
	bValidator "github.com/x-xyz/nftdash/base/validator"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/dashboard"
	"github.com/x-xyz/nftdash/domain/dashboard/mocks"
	"github.com/x-xyz/nftdash/domain/ownership"
)

const (
	bayc  = domain.Address("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	owner = domain.Address("0xAAA0000000000000000000000000000000000001")
)

type handlerSuite struct {
	suite.Suite

	e         *echo.Echo
	dashboard *mocks.Usecase
}

func (s *handlerSuite) SetupTest() {
	s.dashboard = &mocks.Usecase{}
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.dashboard)
}

func (s *handlerSuite) TearDownTest() {
	s.dashboard.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestFetch() {
	req := dashboard.FetchRequest{ChainId: 1, Contract: bayc}
	s.dashboard.On("Fetch", mock.Anything, req).Return(&dashboard.Snapshot{
		Seq:      1,
		ChainId:  1,
		Contract: bayc,
		Owner:    owner,
		Result:   ownership.Succeeded(domain.TokenIdList{"1", "2", "3"}),
		Applied:  true,
	}, nil).Once()

	rec := s.do(http.MethodPost, "/dashboard/fetch", `{"chainId":1,"contract":"`+string(bayc)+`"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"tokenIds":["1","2","3"]`)
	s.Contains(rec.Body.String(), `"status":"success"`)
}

func (s *handlerSuite) TestFetchNoWallet() {
	s.dashboard.On("Fetch", mock.Anything, mock.Anything).Return(nil, domain.ErrNoWalletConnected).Once()

	rec := s.do(http.MethodPost, "/dashboard/fetch", `{"chainId":1,"contract":"`+string(bayc)+`"}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"data":"no wallet connected","status":"fail"}`, rec.Body.String())
}

func (s *handlerSuite) TestFetchBadChain() {
	for _, err := range []error{domain.ErrUnsupportedChain, domain.ErrInvalidChainId} {
		s.dashboard.On("Fetch", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("chain 5: %w", err)).Once()

		rec := s.do(http.MethodPost, "/dashboard/fetch", `{"chainId":5,"contract":"`+string(bayc)+`"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	}
}

func (s *handlerSuite) TestFetchBadRequest() {
	bodies := []string{
		`{"chainId":1}`,
		`{"chainId":1,"contract":"0x123"}`,
		`{"contract":"` + string(bayc) + `"}`,
		`{"chainId":1,"contract":"` + string(bayc) + `","owner":"nobody"}`,
		`{"chainId":"one"`,
	}
	for _, body := range bodies {
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/dashboard/fetch", body).Code, body)
	}
}

func (s *handlerSuite) TestSnapshot() {
	s.dashboard.On("Snapshot", mock.Anything).Return(nil).Once()

	rec := s.do(http.MethodGet, "/dashboard", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":null,"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestCollections() {
	s.dashboard.On("Collections", mock.Anything).Return([]dashboard.Collection{{ChainId: 1, Address: bayc, Name: "BAYC"}}).Once()

	rec := s.do(http.MethodGet, "/dashboard/collections", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[{"chainId":1,"address":"`+string(bayc)+`","name":"BAYC"}],"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestFetchAll() {
	s.dashboard.On("FetchAll", mock.Anything, domain.Address("owner.eth")).Return([]dashboard.CollectionResult{
		{Collection: dashboard.Collection{ChainId: 1, Address: bayc, Name: "BAYC"}, Result: ownership.Succeeded(domain.TokenIdList{"9"})},
	}, nil).Once()

	rec := s.do(http.MethodPost, "/dashboard/collections/fetch", `{"owner":"owner.eth"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"tokenIds":["9"]`)
}
