package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	before := testutil.ToFloat64(shopEvents.WithLabelValues(EventCartAdd))
	Record(EventCartAdd)
	Record(EventCartAdd)
	assert.Equal(t, before+2, testutil.ToFloat64(shopEvents.WithLabelValues(EventCartAdd)))
}

func TestInstrumentUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Instrument())
	r.GET("/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(Handler()))

	counter := httpRequests.WithLabelValues(http.MethodGet, "/products/:id", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/2", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gearshop_http_requests_total")
}
