//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketlink/internal/domain/user"
	"marketlink/internal/handler/api"
	reqdto "marketlink/internal/handler/dto/request"
	resdto "marketlink/internal/handler/dto/response"
	"marketlink/internal/usecase/commands"
	"marketlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type stubProductCommands struct {
	createFn func(req reqdto.CreateProductRequest, ownerID uuid.UUID) (*queries.ProductView, error)
	updateFn func(req reqdto.UpdateProductRequest, productID, actorID uuid.UUID, role user.Role) (*queries.ProductView, error)
	deleteFn func(productID, actorID uuid.UUID, role user.Role) error
}

func (s *stubProductCommands) Create(_ context.Context, req reqdto.CreateProductRequest, ownerID uuid.UUID) (*queries.ProductView, error) {
	return s.createFn(req, ownerID)
}

func (s *stubProductCommands) Update(_ context.Context, req reqdto.UpdateProductRequest, productID, actorID uuid.UUID, role user.Role) (*queries.ProductView, error) {
	return s.updateFn(req, productID, actorID, role)
}

func (s *stubProductCommands) Delete(_ context.Context, productID, actorID uuid.UUID, role user.Role) error {
	return s.deleteFn(productID, actorID, role)
}

type stubProductQueries struct {
	getByIDFn     func(id uuid.UUID) (*queries.ProductView, error)
	listForRoleFn func(callerID uuid.UUID, role user.Role) ([]*queries.ProductView, error)
}

func (s *stubProductQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ProductView, error) {
	return s.getByIDFn(id)
}

func (s *stubProductQueries) ListForRole(_ context.Context, callerID uuid.UUID, role user.Role) ([]*queries.ProductView, error) {
	return s.listForRoleFn(callerID, role)
}

func productView(ownerID uuid.UUID) *queries.ProductView {
	return &queries.ProductView{
		ID:            uuid.New(),
		Name:          "Office Chair",
		Price:         decimal.NewFromFloat(49.90),
		Quantity:      12,
		Location:      "Springfield",
		OwnerID:       ownerID,
		OwnerUsername: "alice",
		CreatedAt:     time.Now().UTC(),
	}
}

type ProductHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *stubProductCommands
	q      *stubProductQueries
	userID uuid.UUID
	role   user.Role
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cmds = &stubProductCommands{}
	s.q = &stubProductQueries{}
	s.userID = uuid.New()
	s.role = user.RoleSeller

	handler := api.NewProductHandler(s.cmds, s.q)

	// Stand-in for the auth middleware: inject the user context directly.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	})
	s.router.GET("/products", handler.List)
	s.router.GET("/products/:id", handler.Get)
	s.router.POST("/products", handler.Create)
	s.router.PUT("/products/:id", handler.Update)
	s.router.DELETE("/products/:id", handler.Delete)
}

func (s *ProductHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ProductHandlerTestSuite) TestCreate() {
	s.Run("returns 201 with the created listing", func() {
		s.cmds.createFn = func(req reqdto.CreateProductRequest, ownerID uuid.UUID) (*queries.ProductView, error) {
			s.Equal(s.userID, ownerID)
			s.Equal("Office Chair", req.Name)
			return productView(ownerID), nil
		}

		rec := s.performJSON(http.MethodPost, "/products", reqdto.CreateProductRequest{
			Name:     "Office Chair",
			Price:    49.90,
			Quantity: 12,
			Location: "Springfield",
		})

		s.Equal(http.StatusCreated, rec.Code)
		var resp resdto.ProductResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Office Chair", resp.Name)
		s.InDelta(49.90, resp.Price, 0.001)
	})

	s.Run("returns 400 on invalid body", func() {
		rec := s.performJSON(http.MethodPost, "/products", map[string]any{
			"name":     "Office Chair",
			"price":    -5,
			"location": "Springfield",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	s.Run("returns 404 for unknown product", func() {
		s.q.getByIDFn = func(uuid.UUID) (*queries.ProductView, error) {
			return nil, queries.ErrProductNotFound
		}
		rec := s.performJSON(http.MethodGet, "/products/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 400 for a malformed id", func() {
		rec := s.performJSON(http.MethodGet, "/products/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ProductHandlerTestSuite) TestList() {
	s.q.listForRoleFn = func(callerID uuid.UUID, role user.Role) ([]*queries.ProductView, error) {
		s.Equal(s.userID, callerID)
		s.Equal(user.RoleSeller, role)
		return []*queries.ProductView{productView(s.userID)}, nil
	}

	rec := s.performJSON(http.MethodGet, "/products", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp []resdto.ProductResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp, 1)
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	s.Run("maps ownership errors to 403", func() {
		s.cmds.updateFn = func(_ reqdto.UpdateProductRequest, _, _ uuid.UUID, _ user.Role) (*queries.ProductView, error) {
			return nil, commands.ErrNotProductOwner
		}
		rec := s.performJSON(http.MethodPut, "/products/"+uuid.NewString(), reqdto.UpdateProductRequest{
			Name:     "Office Chair",
			Price:    49.90,
			Quantity: 12,
			Location: "Springfield",
		})
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	s.Run("returns 204 on success", func() {
		s.cmds.deleteFn = func(productID, actorID uuid.UUID, role user.Role) error {
			s.Equal(s.userID, actorID)
			return nil
		}
		rec := s.performJSON(http.MethodDelete, "/products/"+uuid.NewString(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("maps missing product to 404", func() {
		s.cmds.deleteFn = func(uuid.UUID, uuid.UUID, user.Role) error {
			return commands.ErrProductNotFound
		}
		rec := s.performJSON(http.MethodDelete, "/products/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
