package server

import (
	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	"github.com/gin-gonic/gin"
)

// PriceRequest is the shared body of all three pricing surfaces.
type PriceRequest struct {
	Configuration costingdomain.ProductConfiguration `json:"configuration"`
	SkipMargin    bool                               `json:"skip_margin"`
}

// EstimateCart prices a live cart.
func (s *Server) EstimateCart(c *gin.Context) {
	s.handleCalculate(c, costingdomain.ContextCart)
}

// PriceQuote prices a standalone quote.
func (s *Server) PriceQuote(c *gin.Context) {
	s.handleCalculate(c, costingdomain.ContextQuote)
}

// RepriceInvoice recomputes costs for a stored order's invoice.
func (s *Server) RepriceInvoice(c *gin.Context) {
	s.handleCalculate(c, costingdomain.ContextInvoice)
}

// handleCalculate is the single thin adapter every surface shares; only the
// context tag differs, so identical configurations price identically.
func (s *Server) handleCalculate(c *gin.Context, contextTag string) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.costingSvc.Calculate(c.Request.Context(), costingdomain.CalculateRequest{
		Config:     req.Configuration,
		Context:    contextTag,
		SkipMargin: req.SkipMargin,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}
