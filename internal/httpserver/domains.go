package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	deviceHTTP "todo-backend/internal/device/delivery/http"
	devicePostgre "todo-backend/internal/device/repository/postgre"
	deviceUC "todo-backend/internal/device/usecase"
	"todo-backend/internal/middleware"
	notifierHTTP "todo-backend/internal/notifier/delivery/http"
	notifierUC "todo-backend/internal/notifier/usecase"
	todoHTTP "todo-backend/internal/todo/delivery/http"
	todoRepoPkg "todo-backend/internal/todo/repository"
	todoPostgre "todo-backend/internal/todo/repository/postgre"
	todoUC "todo-backend/internal/todo/usecase"
)

// setupTodoDomain initializes the todo domain and registers its routes.
// The repository is returned so the notifier domain can share it.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) todoRepoPkg.Repository {
	repo := todoPostgre.New(srv.postgresDB, srv.l)
	uc := todoUC.New(srv.l, repo, srv.calendar, srv.calendarID, srv.timezone)
	h := todoHTTP.New(srv.l, uc)

	todoHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Todo domain registered")
	return repo
}

// setupDeviceDomain initializes the device registry and registers its routes.
func (srv HTTPServer) setupDeviceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := devicePostgre.New(srv.postgresDB, srv.l)
	uc := deviceUC.New(srv.l, repo)
	h := deviceHTTP.New(srv.l, uc)

	deviceHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Device domain registered")
}

// setupNotifierDomain wires the due-task notifier behind the internal group.
func (srv HTTPServer) setupNotifierDomain(ctx context.Context, internal *gin.RouterGroup, mw middleware.Middleware, repo todoRepoPkg.Repository) {
	uc := notifierUC.New(srv.l, repo, srv.push)
	h := notifierHTTP.New(srv.l, uc)

	notifierHTTP.RegisterRoutes(internal, h, mw)
	srv.l.Infof(ctx, "Notifier trigger registered")
}
