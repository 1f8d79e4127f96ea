package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop/config"
	apimiddleware "shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/delivery/api/validator"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUC "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken    = "admin-token"
	merchantToken = "merchant-token"
	customerToken = "customer-token"
)

var (
	admin    = &entity.User{ID: 1, Email: "admin@example.com", Roles: entity.Roles{{ID: entity.RoleCustomer, Name: "Customer"}, {ID: entity.RoleAdmin, Name: "Admin"}}}
	merchant = &entity.User{ID: 7, Email: "merchant@example.com", Roles: entity.Roles{{ID: entity.RoleMerchant, Name: "Merchant"}}}
	customer = &entity.User{ID: 9, Email: "customer@example.com", Roles: entity.Roles{{ID: entity.RoleCustomer, Name: "Customer"}}}
)

type testServer struct {
	e         *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	userUC    *mockUC.MockUserUsecase
	catalogUC *mockUC.MockCatalogUsecase
	productUC *mockUC.MockProductUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		authUC:    mockUC.NewMockAuthUsecase(t),
		userUC:    mockUC.NewMockUserUsecase(t),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		productUC: mockUC.NewMockProductUsecase(t),
	}

	s.authUC.EXPECT().Authenticate(mock.Anything, adminToken).Return(admin, nil).Maybe()
	s.authUC.EXPECT().Authenticate(mock.Anything, merchantToken).Return(merchant, nil).Maybe()
	s.authUC.EXPECT().Authenticate(mock.Anything, customerToken).Return(customer, nil).Maybe()

	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{ActivateRequests: 2, ActivateWindow: time.Minute},
	}

	s.e = echo.New()
	s.e.Validator = validator.New()
	s.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: s.authUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: s.userUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: s.catalogUC}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: s.productUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: s.authUC, Logger: logger}),
		Config:         cfg,
	}).RegisterRoutes(s.e)

	return s
}

func (s *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRegister(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		s := newTestServer(t)
		s.authUC.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Email: "new@example.com", Password: "secret123"}).
			Return(&usecase.RegisterOutput{Message: usecase.RegisterSuccessMessage}, nil)

		rec := s.do(http.MethodPost, "/auth/register", "", `{"email":"  new@example.com ","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User successfully registered"}`, string(decode(t, rec).Data))
	})

	t.Run("rejects invalid input before the usecase", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/auth/register", "", `{"email":"not-an-email","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newTestServer(t)
		s.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := s.do(http.MethodPost, "/auth/register", "", `{"email":"dup@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/auth/register", "", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@example.com", Password: "secret123"}).
		Return(&usecase.TokenOutput{AccessToken: "jwt"}, nil)
	s.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := s.do(http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accessToken":"jwt"}`, string(decode(t, rec).Data))

	rec = s.do(http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
}

func TestRouteAccess(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{name: "profile needs a token", method: http.MethodGet, target: "/user/profile", want: http.StatusUnauthorized},
		{name: "user list is admin only", method: http.MethodGet, target: "/user", token: merchantToken, want: http.StatusForbidden},
		{name: "user delete is admin only", method: http.MethodDelete, target: "/user/9", token: customerToken, want: http.StatusForbidden},
		{name: "role assign is admin only", method: http.MethodPost, target: "/role/assign", token: merchantToken, want: http.StatusForbidden},
		{name: "customers cannot create products", method: http.MethodPost, target: "/product/create", token: customerToken, want: http.StatusForbidden},
		{name: "customers cannot search", method: http.MethodGet, target: "/product/search", token: customerToken, want: http.StatusForbidden},
		{name: "activate needs a token", method: http.MethodPost, target: "/product/1/activate", want: http.StatusUnauthorized},
		{name: "delete needs a token", method: http.MethodDelete, target: "/product/1", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(tt.method, tt.target, tt.token, "")

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestUserRoutes(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		s := newTestServer(t)
		s.userUC.EXPECT().GetProfile(mock.Anything, int64(9)).Return(customer, nil)

		rec := s.do(http.MethodGet, "/user/profile", customerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var user handler.UserResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &user))
		assert.Equal(t, "customer@example.com", user.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("update with empty body", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPatch, "/user/9", customerToken, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update passes the actor", func(t *testing.T) {
		s := newTestServer(t)
		email := "renamed@example.com"
		s.userUC.EXPECT().
			UpdateUser(mock.Anything, customer, int64(9), &usecase.UpdateUserInput{Email: &email}).
			Return(&entity.User{ID: 9, Email: email}, nil)

		rec := s.do(http.MethodPatch, "/user/9", customerToken, `{"email":"renamed@example.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin deletes", func(t *testing.T) {
		s := newTestServer(t)
		s.userUC.EXPECT().DeleteUser(mock.Anything, int64(9)).Return(nil)

		rec := s.do(http.MethodDelete, "/user/9", adminToken, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("admin assigns a role", func(t *testing.T) {
		s := newTestServer(t)
		s.userUC.EXPECT().AssignRole(mock.Anything, int64(9), entity.RoleMerchant).Return(merchant, nil)

		rec := s.do(http.MethodPost, "/role/assign", adminToken, `{"userId":9,"roleId":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)
	s.catalogUC.EXPECT().ListRoles(mock.Anything).Return([]*entity.Role{{ID: entity.RoleCustomer, Name: "Customer"}}, nil)
	s.catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: entity.CategoryComputers, Name: "Computers"}}, nil)

	rec := s.do(http.MethodGet, "/role", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Customer"}]`, string(decode(t, rec).Data))

	rec = s.do(http.MethodGet, "/category", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Computers"}]`, string(decode(t, rec).Data))
}

func TestProductRoutes(t *testing.T) {
	computers := &entity.Category{ID: entity.CategoryComputers, Name: "Computers"}

	t.Run("create draft for the caller", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().
			CreateProduct(mock.Anything, &usecase.CreateProductInput{CategoryID: entity.CategoryComputers, MerchantID: merchant.ID}).
			Return(&entity.Product{ID: 11, MerchantID: merchant.ID, Category: computers, VariationType: entity.VariationNone}, nil)

		rec := s.do(http.MethodPost, "/product/create", merchantToken, `{"categoryId":1}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var product struct {
			ID         int64 `json:"id"`
			MerchantID int64 `json:"merchantId"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &product))
		assert.Equal(t, int64(11), product.ID)
		assert.Equal(t, merchant.ID, product.MerchantID)
	})

	t.Run("create rejects a missing category", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/product/create", merchantToken, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("get is public", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().GetProduct(mock.Anything, int64(11)).Return(&entity.Product{ID: 11, Price: decimal.RequireFromString("19.90")}, nil)

		rec := s.do(http.MethodGet, "/product/11", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"price":"19.9"`)
	})

	t.Run("get rejects a bad id", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/product/abc", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", errorCode(t, rec))
	})

	t.Run("label is a png", func(t *testing.T) {
		s := newTestServer(t)
		png := []byte("\x89PNG\r\n\x1a\n")
		s.productUC.EXPECT().ProductLabel(mock.Anything, int64(11)).Return(png, nil)

		rec := s.do(http.MethodGet, "/product/11/qrcode", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("details with unknown category", func(t *testing.T) {
		s := newTestServer(t)
		body := `{"title":"Laptop","code":"LP-1","variationType":"NONE","about":["fast"],"description":"d","details":{"category":"Toys"}}`

		rec := s.do(http.MethodPost, "/product/11/details", merchantToken, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DETAILS_CATEGORY", errorCode(t, rec))
	})

	t.Run("details decoded and scoped to the caller", func(t *testing.T) {
		s := newTestServer(t)
		body := `{"title":" Laptop ","code":"LP-1","variationType":"NONE","about":["fast"],"description":"d",` +
			`"details":{"category":"Computers","capacity":512,"capacityUnit":"GB","capacityType":"SSD","brand":"Acme","series":"X"}}`
		s.productUC.EXPECT().
			AddProductDetails(mock.Anything, mock.MatchedBy(func(in *usecase.AddProductDetailsInput) bool {
				computer, ok := in.Details.Details.(*entity.ComputerDetails)

				return in.ProductID == 11 && in.MerchantID == merchant.ID &&
					in.Details.Title == "Laptop" && ok && computer.Capacity == 512
			})).
			Return(&entity.Product{ID: 11, Title: "Laptop"}, nil)

		rec := s.do(http.MethodPost, "/product/11/details", merchantToken, body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("activate not fulfilled", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().
			ActivateProduct(mock.Anything, int64(11), merchant.ID).
			Return(nil, domainerrors.ErrProductNotFulfilled.WithDetails("missing title, code"))

		rec := s.do(http.MethodPost, "/product/11/activate", merchantToken, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "missing title, code", env.Error.Details)
	})

	t.Run("activate is rate limited per user", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().
			ActivateProduct(mock.Anything, int64(11), merchant.ID).
			Return(&entity.ProductActivation{ID: 11, IsActive: true}, nil).
			Times(2)

		for range 2 {
			rec := s.do(http.MethodPost, "/product/11/activate", merchantToken, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"id":11,"isActive":true}`, string(decode(t, rec).Data))
		}

		rec := s.do(http.MethodPost, "/product/11/activate", merchantToken, "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().
			DeleteProduct(mock.Anything, int64(11), merchant.ID).
			Return(&usecase.DeleteProductOutput{Message: usecase.DeleteSuccessMessage}, nil)

		rec := s.do(http.MethodDelete, "/product/11", merchantToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Product deleted successfully"}`, string(decode(t, rec).Data))
	})

	t.Run("delete of a foreign product", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().DeleteProduct(mock.Anything, int64(12), merchant.ID).Return(nil, domainerrors.ErrProductNotFound)

		rec := s.do(http.MethodDelete, "/product/12", merchantToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearchProducts(t *testing.T) {
	t.Run("binds query filters", func(t *testing.T) {
		s := newTestServer(t)
		s.productUC.EXPECT().
			SearchProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductSearch) bool {
				return f.MerchantID == merchant.ID &&
					f.Search == "lap" &&
					f.CategoryID != nil && *f.CategoryID == entity.CategoryComputers &&
					f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(10)) &&
					f.MaxPrice == nil &&
					f.IsActive != nil && *f.IsActive &&
					f.SortBy == entity.SortByPrice &&
					f.Page == 2 && f.Limit == 5
			})).
			Return(entity.NewPage([]*entity.Product{{ID: 3}}, 6, 2, 5), nil)

		rec := s.do(http.MethodGet, "/product/search?search=lap&categoryId=1&minPrice=10&isActive=true&sortBy=price&page=2&limit=5", merchantToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
		assert.Equal(t, int64(6), page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("rejects a malformed price", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/product/search?minPrice=ten", merchantToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})
}
