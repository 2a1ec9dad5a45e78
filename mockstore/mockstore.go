// Package mockstore is an in-memory implementation of the user data store
// wire contract, used for integration tests and local development. It stores
// envelopes opaquely; decryption stays with the client.
package mockstore

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viant/datastore/internal/collection"
	"github.com/viant/datastore/schema"
	"github.com/viant/datastore/token"
)

type record struct {
	envelope string
	iat      int64
}

// Service holds one envelope per service slug and user.
type Service struct {
	records *collection.SyncMap[string, record]
	issuer  *token.Issuer
	now     func() time.Time
}

// Option customises the mock store.
type Option func(s *Service)

// WithTokenVerification makes the store reject requests whose access token
// does not verify against the shared service token, exercising the receiving
// side of token issuance.
func WithTokenVerification(issuer *token.Issuer) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// WithNow overrides the clock used to stamp stored records.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates an empty mock store.
func New(options ...Option) *Service {
	ret := &Service{
		records: collection.NewSyncMap[string, record](),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Handler exposes the store wire contract as an HTTP handler.
func (s *Service) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/service/:serviceSlug/user/:userId", s.getData)
	router.POST("/service/:serviceSlug/user/:userId", s.setData)
	return router
}

func (s *Service) getData(c *gin.Context) {
	requestContext := contextOf(c)
	if !s.authorize(c, requestContext) {
		return
	}
	rec, ok := s.records.Get(key(requestContext))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for user"})
		return
	}
	c.JSON(http.StatusOK, &schema.GetResponse{Iat: rec.iat, Payload: rec.envelope})
}

func (s *Service) setData(c *gin.Context) {
	requestContext := contextOf(c)
	request := &schema.SetRequest{}
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.authorizeClaims(c, request) {
		return
	}
	s.records.Put(key(requestContext), record{envelope: request.Payload, iat: s.now().Unix()})
	c.Status(http.StatusNoContent)
}

// authorize verifies a read token, whose checksum covers the request context.
func (s *Service) authorize(c *gin.Context, requestContext *schema.RequestContext) bool {
	return s.authorizeClaims(c, requestContext)
}

// authorizeClaims verifies the access token signature and recomputes the
// checksum over the same material the sender signed.
func (s *Service) authorizeClaims(c *gin.Context, material any) bool {
	if s.issuer == nil {
		return true
	}
	claims, err := s.issuer.Decode(c.GetHeader("X-Access-Token"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
		return false
	}
	expected, err := token.Checksum(material)
	if err != nil || claims["checksum"] != expected {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "checksum mismatch"})
		return false
	}
	return true
}

func contextOf(c *gin.Context) *schema.RequestContext {
	return &schema.RequestContext{
		ServiceSlug: c.Param("serviceSlug"),
		UserID:      c.Param("userId"),
	}
}

func key(requestContext *schema.RequestContext) string {
	return requestContext.ServiceSlug + "/" + requestContext.UserID
}
