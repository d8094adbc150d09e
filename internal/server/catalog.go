package server

import (
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	"github.com/gin-gonic/gin"
)

// ListPriceRows returns the catalog view the next calculation would use.
func (s *Server) ListPriceRows(c *gin.Context) {
	snap, err := s.priceSvc.Snapshot(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, snap.Rows())
}

// ListMarginSettings returns the effective per-category margins, defaults
// included.
func (s *Server) ListMarginSettings(c *gin.Context) {
	effective := s.marginSvc.Resolve(c.Request.Context())

	out := make([]margindomain.Setting, 0, len(effective))
	for _, category := range []margindomain.Category{
		margindomain.CategoryBlankCaps,
		margindomain.CategoryCustomizations,
		margindomain.CategoryDelivery,
	} {
		out = append(out, effective[category])
	}
	respondList(c, out)
}
