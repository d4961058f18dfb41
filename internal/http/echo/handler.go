package echo

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/cis1912-fa25/cicd-lab/internal/platform/logging"
)

// GetOutput is the response wrapper for the default greeting.
type GetOutput struct {
	Body Data
}

// NameOutput is the response wrapper for the personalized greeting.
type NameOutput struct {
	Body Data
}

// Register wires echo routes into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/echo", getHandler)
	huma.Get(api, "/echo/{name}", nameHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "echo get", zap.String("path", "/echo"))
	return &GetOutput{Body: Data{Message: "Hello, World!"}}, nil
}

func nameHandler(ctx context.Context, input *NameInput) (*NameOutput, error) {
	applog.LogInfo(ctx, "echo name", zap.String("path", "/echo/{name}"), zap.String("name", input.Name))
	return &NameOutput{Body: Data{Message: fmt.Sprintf("Hello, %s!", input.Name)}}, nil
}
