package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
	"moteka/internal/service"
)

type memReportRepo struct {
	reports []entity.WorkReport
}

func (f *memReportRepo) Create(rep *entity.WorkReport) error {
	rep.ID = int64(len(f.reports) + 1)
	f.reports = append(f.reports, *rep)
	return nil
}

func (f *memReportRepo) List() ([]entity.WorkReport, error) {
	return f.reports, nil
}

func (f *memReportRepo) ListByOrder(orderID int64) ([]entity.WorkReport, error) {
	out := []entity.WorkReport{}
	for _, rep := range f.reports {
		if rep.OrderID == orderID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func newReportRouter() (*gin.Engine, *memOrderRepo, *memReportRepo) {
	gin.SetMode(gin.TestMode)

	orders := newMemOrderRepo()
	reports := &memReportRepo{}
	svc := service.NewWorkReportService(reports, orders, memUserRepo{})
	h := NewWorkReportHandler(svc)

	app := gin.New()
	app.GET("/api/work-reports", h.List)
	return app, orders, reports
}

func TestWorkReportListing(t *testing.T) {
	app, orders, reports := newReportRouter()

	seedHTTPOrder(t, orders)
	seedHTTPOrder(t, orders)
	for _, orderID := range []int64{1, 1, 2} {
		require.NoError(t, reports.Create(&entity.WorkReport{
			OrderID: orderID, MechanicID: 7, Description: "cambio de aceite",
		}))
	}

	t.Run("without order_id lists everything", func(t *testing.T) {
		w := doJSON(app, http.MethodGet, "/api/work-reports", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []entity.WorkReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 3)
	})

	t.Run("order_id narrows the listing", func(t *testing.T) {
		w := doJSON(app, http.MethodGet, "/api/work-reports?order_id=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []entity.WorkReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
	})

	t.Run("malformed order_id is rejected", func(t *testing.T) {
		w := doJSON(app, http.MethodGet, "/api/work-reports?order_id=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		w := doJSON(app, http.MethodGet, "/api/work-reports?order_id=999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
