package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	plannerHTTP "day-planner/internal/planner/delivery/http"
	plannerRepo "day-planner/internal/planner/repository/postgre"
	plannerUC "day-planner/internal/planner/usecase"
)

// setupPlannerDomain initializes the planner domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, ..., srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := plannerRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := plannerUC.New(repo, srv.provider, srv.calendar, srv.image, srv.clerk, srv.planner, srv.l)

	// 3. HTTP Handler
	h := plannerHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/planner
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered (provider=%s model=%s)", srv.provider.Name(), srv.provider.Model())
	return nil
}
