package contracts

import "github.com/julienschmidt/httprouter"

// Handler is the surface a service's HTTP handler exposes to pkg/app.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
