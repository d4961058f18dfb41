package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/cis1912-fa25/cicd-lab/internal/http/echo"
	"github.com/cis1912-fa25/cicd-lab/internal/http/health"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	health.Register(api)
	echo.Register(api)
}
