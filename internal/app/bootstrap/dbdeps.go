// internal/app/bootstrap/dbdeps.go
package bootstrap

// DBDeps holds back-end dependencies for the app.
//
// The deck keeps all state in the request URL and the type catalog is
// compiled in, so there are no clients to hold.
type DBDeps struct{}
