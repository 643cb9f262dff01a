package client

import "errors"

var (
	ErrNoServices      = errors.New("client services are not configured")
	ErrNoServerAdapter = errors.New("server adapter is not configured")
)
