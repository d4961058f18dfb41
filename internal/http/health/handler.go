package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/cis1912-fa25/cicd-lab/internal/platform/logging"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status" doc:"Service health status" example:"healthy"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Response
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "health check")
		return &Output{Body: Response{Status: "healthy"}}, nil
	})
}
