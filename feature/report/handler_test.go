package report

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, rows ...roster.Row) (*fiber.App, *Service) {
	t.Helper()
	app := fiber.New()
	store := roster.NewStore()
	store.Load(rows)
	svc := NewService(store, 10905, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, svc
}

// delegationWorkbook builds an xlsx with one row of values per sheet.
func delegationWorkbook(t *testing.T, sheets map[string][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, cells := range sheets {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for c, cell := range cells {
			coord, err := excelize.CoordinatesToCellName(c+1, 1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, coord, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, content []byte, baseline string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "delegation.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	if baseline != "" {
		require.NoError(t, w.WriteField("baseline", baseline))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleHeadcount(t *testing.T) {
	app, _ := setupTestApp(t,
		roster.Row{ID: "A1", Name: "Tanaka", Status: "present", CheckedIn: "2025/05/24 09:00"},
		roster.Row{ID: "A2", Name: "Suzuki"},
		roster.Row{ID: "A3", Name: "Sato"},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/headcount", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var parsed map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, 1, parsed["present"])
	assert.Equal(t, 2, parsed["absent"])
	assert.Equal(t, 3, parsed["total"])
}

func TestHandleReconcile(t *testing.T) {
	app, _ := setupTestApp(t,
		roster.Row{ID: "A2", Name: "Suzuki"},
		roster.Row{ID: "A4", Name: "Sato"},
	)

	// Two sheets: A2 appears in both, so it is the one duplicate key
	content := delegationWorkbook(t, map[string][]string{
		"proxy 1": {"A1", "A2"},
		"proxy 2": {"A2", "A3"},
	})
	body, contentType := multipartUpload(t, content, "")

	req := httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 3, summary.UniqueDelegation)
	assert.Equal(t, 1, summary.DelegationDuplicateKeys)
	assert.Equal(t, 2, summary.UniqueRoster)
	assert.Equal(t, 4, summary.TotalUnique)
	assert.Equal(t, 1, summary.BothPresent)
	assert.Equal(t, 10905, summary.BaselineTotal)
}

func TestHandleReconcileBaselineOverride(t *testing.T) {
	app, _ := setupTestApp(t, roster.Row{ID: "A1", Name: "Tanaka"})

	content := delegationWorkbook(t, map[string][]string{"Sheet1": {"A1"}})
	body, contentType := multipartUpload(t, content, "500")

	req := httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 500, summary.BaselineTotal)
}

func TestHandleReconcileBadBaseline(t *testing.T) {
	app, _ := setupTestApp(t)

	content := delegationWorkbook(t, map[string][]string{"Sheet1": {"A1"}})
	body, contentType := multipartUpload(t, content, "lots")

	req := httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcileParseErrorKeepsPriorSummary(t *testing.T) {
	app, svc := setupTestApp(t, roster.Row{ID: "A1", Name: "Tanaka"})

	// First run produces a summary
	content := delegationWorkbook(t, map[string][]string{"Sheet1": {"A1"}})
	body, contentType := multipartUpload(t, content, "")
	req := httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	prior, ok := svc.LastSummary()
	require.True(t, ok)

	// Unreadable workbook: 400, prior summary untouched
	body, contentType = multipartUpload(t, []byte("garbage"), "")
	req = httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	after, ok := svc.LastSummary()
	require.True(t, ok)
	assert.Equal(t, prior, after)
}

func TestHandleReconcileMissingFile(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/report/reconcile", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleLastSummary(t *testing.T) {
	app, _ := setupTestApp(t, roster.Row{ID: "A1", Name: "Tanaka"})

	// No run yet
	resp, err := app.Test(httptest.NewRequest("GET", "/report/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	content := delegationWorkbook(t, map[string][]string{"Sheet1": {"A1", "A2"}})
	body, contentType := multipartUpload(t, content, "")
	req := httptest.NewRequest("POST", "/report/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/report/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 2, summary.UniqueDelegation)
}
