package tui

import "github.com/Paulo20Lima/esportes/internal/catalog"

// Route names understood by ResolveRoute.
const (
	// RouteList is the initial route.
	RouteList = "/"
	// RouteDetail requires a sport payload.
	RouteDetail = "/detail"
)

// Route is the typed union of reachable navigation targets.
type Route interface {
	isRoute()
}

// ListRoute is the list screen, the application's entry point.
type ListRoute struct{}

// DetailRoute is the detail screen for one fully-populated sport record.
// The record travels with the route; it is never re-fetched by id.
type DetailRoute struct {
	Sport catalog.Sport
}

// UnknownRoute is the fallback for any unmatched route name. It is a
// terminal state: no further transition is defined from it.
type UnknownRoute struct {
	Name string
}

func (ListRoute) isRoute()    {}
func (DetailRoute) isRoute()  {}
func (UnknownRoute) isRoute() {}

// ResolveRoute maps a route name plus optional payload to a Route. The
// detail route without a payload is unmatched, not an error.
func ResolveRoute(name string, sport *catalog.Sport) Route {
	switch name {
	case RouteList:
		return ListRoute{}
	case RouteDetail:
		if sport == nil {
			return UnknownRoute{Name: name}
		}
		return DetailRoute{Sport: *sport}
	default:
		return UnknownRoute{Name: name}
	}
}
