package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/auth"
	"github.com/frahmantamala/student-finance/internal/dashboard"
	"github.com/frahmantamala/student-finance/internal/gig"
	"github.com/frahmantamala/student-finance/internal/transport"
	"github.com/frahmantamala/student-finance/internal/transport/rest"
)

const testSecret = "router-test-secret-that-is-long-enough"

type stubGigs struct{}

func (stubGigs) GetGigs(_ context.Context, gigType, _ string) (*gig.GigsView, error) {
	return &gig.GigsView{Type: gigType, Gigs: []*gig.Gig{}}, nil
}

type stubDashboard struct{ owner string }

func (s *stubDashboard) GetDashboard(_ context.Context, ownerID string) (*dashboard.DashboardView, error) {
	s.owner = ownerID
	return &dashboard.DashboardView{DisplayName: "Harsh"}, nil
}

func signedToken(subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := token.SignedString([]byte(testSecret))
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Router", func() {
	var (
		router *chi.Mux
		dash   *stubDashboard
	)

	BeforeEach(func() {
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		base := &transport.BaseHandler{Logger: lg}

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		dash = &stubDashboard{}
		router = chi.NewRouter()
		rest.RegisterAllRoutes(router, rest.Handlers{
			Auth:      auth.NewHandler(base, auth.NewJWTVerifier(internal.SecurityConfig{JWTSecret: testSecret})),
			Health:    rest.NewHealthHandler(sqlx.NewDb(sqlDB, "sqlite3"), "sqlite"),
			Gig:       gig.NewHandler(base, stubGigs{}),
			Dashboard: dashboard.NewHandler(base, dash),
		}, nil, internal.ServerConfig{AllowedOrigins: "http://localhost:5173", StoreTimeout: 5 * time.Second}, lg)
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("should report a healthy record store", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var body rest.HealthResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Status).To(Equal(rest.HealthHealthy))
		Expect(body.Components).To(HaveKey("sqlite"))
	})

	It("should serve catalog screens without a token", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/gigs?type=coding", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"type":"coding"`))
	})

	It("should require a token for owner screens", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(dash.owner).To(BeEmpty())
	})

	It("should scope owner screens to the token subject", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken("user-42"))
		rec := serve(req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(dash.owner).To(Equal("user-42"))
	})

	It("should answer preflight requests for allowed origins", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := serve(req)
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:5173"))
	})

	It("should return a JSON 404 for unknown routes", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
	})
})
