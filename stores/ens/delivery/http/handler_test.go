package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/service/ens/mocks"
)

const address = domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")

type handlerSuite struct {
	suite.Suite

	e   *echo.Echo
	ens *mocks.ENS
}

func (s *handlerSuite) SetupTest() {
	s.ens = &mocks.ENS{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.ens)
}

func (s *handlerSuite) TearDownTest() {
	s.ens.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *handlerSuite) TestResolve() {
	s.ens.On("Resolve", mock.Anything, "machibigbrother.eth").Return(address, nil).Once()

	rec := s.get("/ens/resolve/machibigbrother.eth")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"`+string(address)+`","status":"success"}`, rec.Body.String())

	s.Equal(http.StatusBadRequest, s.get("/ens/resolve/machibigbrother").Code)
}

func (s *handlerSuite) TestResolveError() {
	s.ens.On("Resolve", mock.Anything, "down.eth").Return(domain.Address(""), errors.New("connection refused")).Once()
	s.Equal(http.StatusInternalServerError, s.get("/ens/resolve/down.eth").Code)
}

func (s *handlerSuite) TestReverseResolve() {
	s.ens.On("ReverseResolve", mock.Anything, address).Return("machibigbrother.eth", nil).Once()

	rec := s.get("/ens/reverse-resolve/" + string(address))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"machibigbrother.eth","status":"success"}`, rec.Body.String())

	s.Equal(http.StatusBadRequest, s.get("/ens/reverse-resolve/0x1234").Code)
}
