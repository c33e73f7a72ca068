// Package gin mounts the eil planner service on a gin router.
package gin

import (
	"github.com/gin-gonic/gin"

	eilhttp "github.com/ChiHaoLu/eil-sdk/http"
)

// PlanHandler wraps the planner service's plan endpoint as a gin handler.
func PlanHandler(service *eilhttp.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		service.HandlePlan(c.Writer, c.Request)
	}
}

// Mount registers the planner routes on the router group.
func Mount(router gin.IRoutes, service *eilhttp.Service) {
	router.POST("/plan", PlanHandler(service))
}
