// Package server exposes the funnel over HTTP for the browser front
// end: session lifecycle, step submission and the results view.
package server

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/store"
)

// Server wires the flow controller, persistence, CRM and diagnosis
// behind the REST API.
type Server struct {
	leads        store.LeadRepo
	crm          flow.CRMClient
	staticSrc    flow.QuestionSource
	generatedSrc flow.QuestionSource
	results      *result.Service
	sessions     *sessionRegistry
}

// New creates a Server. crmClient may be nil (CRM sync disabled);
// generatedSrc may be nil, which disables the vendor-link variant.
func New(leads store.LeadRepo, crmClient flow.CRMClient, generatedSrc flow.QuestionSource, results *result.Service) *Server {
	return &Server{
		leads:        leads,
		crm:          crmClient,
		staticSrc:    flow.StaticSource{},
		generatedSrc: generatedSrc,
		results:      results,
		sessions:     newSessionRegistry(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", s.createSession)
		v1.GET("/sessions/:id", s.getSession)
		v1.POST("/sessions/:id/contact", s.submitContact)
		v1.POST("/sessions/:id/company", s.submitCompany)
		v1.POST("/sessions/:id/segment", s.submitSegment)
		v1.POST("/sessions/:id/answers", s.submitAnswer)
		v1.POST("/sessions/:id/back", s.goBack)
		v1.POST("/sessions/:id/result", s.buildResult)

		v1.GET("/leads", s.listLeads)
	}

	return r
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	log.Printf("starting radarpme API on %s", addr)
	return s.Router().Run(addr)
}
