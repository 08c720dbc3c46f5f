package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/depang/shopping-mall-api/services/user-service/internal/usecase"
)

type mileageHTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewMileageHTTPGateway creates a client for the remote mileage service. The
// mileage ledger is provisioned at registration and deprovisioned at
// withdrawal; both calls are fire-and-forget with no compensating action.
func NewMileageHTTPGateway(baseURL string) usecase.MileageGateway {
	return &mileageHTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *mileageHTTPGateway) CreateMileage(ctx context.Context, accountID string) error {
	return g.do(ctx, http.MethodPost, accountID)
}

func (g *mileageHTTPGateway) DeleteMileage(ctx context.Context, accountID string) error {
	return g.do(ctx, http.MethodDelete, accountID)
}

func (g *mileageHTTPGateway) do(ctx context.Context, method, accountID string) error {
	url := fmt.Sprintf("%s/api/mileage/%s", g.baseURL, accountID)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mileage service returned status %d", resp.StatusCode)
	}

	return nil
}
