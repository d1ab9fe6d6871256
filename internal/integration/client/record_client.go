// Package client implements the dashboard's HTTP client for the Record Service.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/dto"
)

const salesPath = "/api/v1/sales"

// RecordClient implements adapter.SaleSource over the Record Service JSON API.
type RecordClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRecordClient creates a client for the Record Service at baseURL.
func NewRecordClient(baseURL string, timeout time.Duration) *RecordClient {
	return &RecordClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ adapter.SaleSource = (*RecordClient)(nil)

// FetchAll retrieves the full record set.
func (c *RecordClient) FetchAll(ctx context.Context) ([]*entity.Sale, error) {
	var payload dto.SaleListResponse
	if err := c.get(ctx, salesPath, &payload); err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, len(payload.Sales))
	for i, s := range payload.Sales {
		sales[i] = s.ToEntity()
	}
	return sales, nil
}

// FetchByID retrieves one record. A 404 maps to domainerror.ErrSaleNotFound.
func (c *RecordClient) FetchByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var payload dto.SaleResponse
	if err := c.get(ctx, salesPath+"/"+strconv.FormatUint(uint64(id), 10), &payload); err != nil {
		return nil, err
	}
	return payload.ToEntity(), nil
}

func (c *RecordClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeRecordServiceUnavailable,
			"record service unreachable",
			errors.Join(domainerror.ErrRecordServiceUnavailable, err),
		)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domainerror.ErrSaleNotFound
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domainerror.NewDashboardError(
			domainerror.ErrCodeUnexpectedStatus,
			fmt.Sprintf("record service answered %d", resp.StatusCode),
			domainerror.ErrUnexpectedRecordServiceStatus,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMalformedResponse,
			"record service returned an undecodable body",
			errors.Join(domainerror.ErrMalformedRecordServiceResponse, err),
		)
	}
	return nil
}
