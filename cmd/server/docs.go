package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Fantasy Baseball Assistant API
// @version         0.1.0
// @description     Composite scoring, watchlists, rankings and schedule strength.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
