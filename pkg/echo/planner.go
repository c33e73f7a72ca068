// Package echo mounts the eil planner service on an echo router.
package echo

import (
	"github.com/labstack/echo/v4"

	eilhttp "github.com/ChiHaoLu/eil-sdk/http"
)

// PlanHandler wraps the planner service's plan endpoint as an echo handler.
func PlanHandler(service *eilhttp.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		service.HandlePlan(c.Response(), c.Request())
		return nil
	}
}

// Mount registers the planner routes on the echo instance.
func Mount(e *echo.Echo, service *eilhttp.Service) {
	e.POST("/plan", PlanHandler(service))
}
