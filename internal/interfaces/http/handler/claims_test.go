package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claimgate/backend/internal/application/claims"
	"github.com/claimgate/backend/internal/domain/claim"
	"github.com/claimgate/backend/internal/interfaces/http/dto"
	"github.com/claimgate/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testAddress = "0x36cd6b3b9329c04df55d55d41c257a5fdd387acd"
	testItemID  = "0x14e15ad24d034f0883e38bcf95a723244a9a22e17d47eb34aa2b91220be0adc4"
)

// stubEligibilityRepository is an in-memory EligibilityRepository for
// handler tests.
type stubEligibilityRepository struct {
	claimableRows map[string]int64
	entitlements  map[string][]claim.Entitlement
	fulfilled     map[string]bool
	redeemable    map[string][]claim.RedeemableItem
	catalog       []claim.ClaimableItem
	err           error
}

func newStubEligibilityRepository() *stubEligibilityRepository {
	return &stubEligibilityRepository{
		claimableRows: make(map[string]int64),
		entitlements:  make(map[string][]claim.Entitlement),
		fulfilled:     make(map[string]bool),
		redeemable:    make(map[string][]claim.RedeemableItem),
	}
}

func (s *stubEligibilityRepository) grant(address, itemID string, amount int64) {
	s.claimableRows[itemID] = 1
	s.entitlements[address+"|"+itemID] = []claim.Entitlement{
		{Address: address, ItemID: itemID, Amount: amount},
	}
}

func (s *stubEligibilityRepository) CountClaimable(_ context.Context, itemID string) (int64, error) {
	return s.claimableRows[itemID], s.err
}

func (s *stubEligibilityRepository) FindEntitlements(_ context.Context, address, itemID string) ([]claim.Entitlement, error) {
	return s.entitlements[address+"|"+itemID], s.err
}

func (s *stubEligibilityRepository) HasFulfillment(_ context.Context, address, itemID string) (bool, error) {
	return s.fulfilled[address+"|"+itemID], s.err
}

func (s *stubEligibilityRepository) RedeemableByAddress(_ context.Context, address string) ([]claim.RedeemableItem, error) {
	return s.redeemable[address], s.err
}

func (s *stubEligibilityRepository) ListClaimableItems(_ context.Context) ([]claim.ClaimableItem, error) {
	return s.catalog, s.err
}

// stubBatch has no size ceiling; publish behavior is controlled on the
// publisher.
type stubBatch struct {
	msgs []claim.Message
}

func (b *stubBatch) TryAdd(msg claim.Message) bool {
	b.msgs = append(b.msgs, msg)
	return true
}

func (b *stubBatch) Len() int { return len(b.msgs) }

type stubPublisher struct {
	sent    []claim.Message
	sendErr error
}

func (p *stubPublisher) NewBatch() claim.MessageBatch { return &stubBatch{} }

func (p *stubPublisher) Send(_ context.Context, batch claim.MessageBatch) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, batch.(*stubBatch).msgs...)
	return nil
}

func newClaimsRouter(t *testing.T, repo *stubEligibilityRepository, pub *stubPublisher) *gin.Engine {
	t.Helper()
	middleware.SetupValidator()

	logger := zaptest.NewLogger(t)
	admission := claims.NewAdmissionService(claims.NewValidator(repo), pub, logger)
	eligibility := claims.NewEligibilityService(repo, logger)
	h := NewClaimsHandler(admission, eligibility)

	router := gin.New()
	router.POST("/claims", h.Submit)
	router.GET("/claims/redeemable", h.Redeemable)
	router.GET("/claims/claimable", h.Claimable)
	return router
}

func postClaims(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/claims", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClaimsHandler_Submit(t *testing.T) {
	t.Run("admits valid claim", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.grant(testAddress, testItemID, 5)
		pub := &stubPublisher{}
		router := newClaimsRouter(t, repo, pub)

		w := postClaims(router, `{"claims":[{"address":"`+testAddress+`","item_id":"`+testItemID+`"}]}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["admitted_count"])
		assert.Equal(t, float64(1), data["published_count"])
		assert.Empty(t, data["rejections"])

		require.Len(t, pub.sent, 1)
		assert.Equal(t, testAddress, pub.sent[0].Address)
		assert.Equal(t, int64(5), pub.sent[0].Amount)
	})

	t.Run("partial admission reports per-candidate rejections", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.grant(testAddress, testItemID, 2)
		pub := &stubPublisher{}
		router := newClaimsRouter(t, repo, pub)

		body := `{"claims":[
			{"address":"` + testAddress + `","item_id":"` + testItemID + `"},
			{"address":"` + testAddress + `","item_id":"0xdead"}
		]}`
		w := postClaims(router, body)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["admitted_count"])
		rejections := data["rejections"].([]interface{})
		require.Len(t, rejections, 1)
		rejection := rejections[0].(map[string]interface{})
		assert.Equal(t, "0xdead", rejection["item_id"])
		assert.Equal(t, claim.ReasonItemNotClaimable, rejection["reason"])
	})

	t.Run("all rejected returns 400 with result payload", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.claimableRows[testItemID] = 1
		repo.fulfilled[testAddress+"|"+testItemID] = true
		repo.entitlements[testAddress+"|"+testItemID] = []claim.Entitlement{
			{Address: testAddress, ItemID: testItemID, Amount: 1},
		}
		pub := &stubPublisher{}
		router := newClaimsRouter(t, repo, pub)

		w := postClaims(router, `{"claims":[{"address":"`+testAddress+`","item_id":"`+testItemID+`"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyFulfilled, resp.Error.Code)

		// Rejection detail still travels with the error.
		data := resp.Data.(map[string]interface{})
		rejections := data["rejections"].([]interface{})
		require.Len(t, rejections, 1)
		assert.Empty(t, pub.sent)
	})

	t.Run("store failure aborts with 400 and nothing published", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.err = errors.New("connection refused")
		pub := &stubPublisher{}
		router := newClaimsRouter(t, repo, pub)

		w := postClaims(router, `{"claims":[{"address":"`+testAddress+`","item_id":"`+testItemID+`"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeStoreUnavailable, resp.Error.Code)
		assert.Empty(t, pub.sent)
	})

	t.Run("publish failure returns 400 with publish counts", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.grant(testAddress, testItemID, 5)
		pub := &stubPublisher{sendErr: errors.New("broken pipe")}
		router := newClaimsRouter(t, repo, pub)

		w := postClaims(router, `{"claims":[{"address":"`+testAddress+`","item_id":"`+testItemID+`"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodePublishFailed, resp.Error.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["admitted_count"])
		assert.Equal(t, float64(0), data["published_count"])
	})

	t.Run("rejects malformed address at binding", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		pub := &stubPublisher{}
		router := newClaimsRouter(t, repo, pub)

		w := postClaims(router, `{"claims":[{"address":"not-hex","item_id":"`+testItemID+`"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "address")
	})

	t.Run("rejects empty claims list", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		router := newClaimsRouter(t, repo, &stubPublisher{})

		w := postClaims(router, `{"claims":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClaimsHandler_Redeemable(t *testing.T) {
	t.Run("returns projection including fulfilled rows", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.redeemable[testAddress] = []claim.RedeemableItem{
			{ItemID: testItemID, Amount: 5, Redeemable: true},
			{ItemID: "0xbeef", Amount: 1, Redeemable: false},
		}
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/redeemable?address="+testAddress, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		items := resp.Data.([]interface{})
		assert.Len(t, items, 2)
	})

	t.Run("unknown address yields empty list", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/redeemable?address="+testAddress, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing address", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/redeemable", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure answers 400", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.err = errors.New("connection refused")
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/redeemable?address="+testAddress, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeStoreUnavailable, resp.Error.Code)
	})
}

func TestClaimsHandler_Claimable(t *testing.T) {
	t.Run("returns catalog", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.catalog = []claim.ClaimableItem{
			{ItemID: testItemID, Name: "genesis drop"},
		}
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/claimable", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		items := resp.Data.([]interface{})
		require.Len(t, items, 1)
	})

	t.Run("store failure answers 400", func(t *testing.T) {
		repo := newStubEligibilityRepository()
		repo.err = errors.New("connection refused")
		router := newClaimsRouter(t, repo, &stubPublisher{})

		req := httptest.NewRequest(http.MethodGet, "/claims/claimable", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
