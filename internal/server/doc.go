// Package server runs the sync server's listeners: the chi HTTP API and the
// gRPC health endpoint. [Server.RunServer] blocks until SIGINT, SIGTERM or SIGQUIT
// and then shuts both listeners down.
package server
