package main

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transit-ticketing/config"
	"transit-ticketing/services"
)

func TestSetupRouter(t *testing.T) {
	network, err := services.LoadDefaultSeed(nil)
	require.NoError(t, err)

	router := setupRouter(&config.Config{GinMode: "test"}, network)

	tests := []struct {
		name         string
		path         string
		expectStatus int
	}{
		{name: "health", path: "/health", expectStatus: http.StatusOK},
		{name: "api mounted", path: "/api/vehicles/Route%2001", expectStatus: http.StatusOK},
		{name: "unknown route", path: "/nope", expectStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.expectStatus, w.Code)
		})
	}
}

func TestNewApp_SeedFlagDefaultsToConfig(t *testing.T) {
	t.Setenv("SEED_FILE", "from-env.yaml")

	app := newApp(&config.Config{SeedFile: "from-config.yaml"})

	var seed string
	app.Commands = append(app.Commands, &cli.Command{
		Name: "capture",
		Action: func(c *cli.Context) error {
			seed = c.String("seed")
			return nil
		},
	})

	require.NoError(t, app.Run([]string{"transit", "capture"}))
	assert.Equal(t, "from-config.yaml", seed)

	require.NoError(t, app.Run([]string{"transit", "--seed", "explicit.yaml", "capture"}))
	assert.Equal(t, "explicit.yaml", seed)
}

func TestRunServer(t *testing.T) {
	t.Run("listen failure is returned", func(t *testing.T) {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer taken.Close()

		srv := &http.Server{Addr: taken.Addr().String(), Handler: http.NotFoundHandler()}
		quit := make(chan os.Signal, 1)

		done := make(chan error, 1)
		go func() { done <- runServer(srv, quit) }()

		select {
		case err := <-done:
			assert.ErrorContains(t, err, "failed to start server")
		case <-time.After(5 * time.Second):
			t.Fatal("runServer did not return on listen failure")
		}
	})

	t.Run("signal shuts down cleanly", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM

		assert.NoError(t, runServer(srv, quit))
	})
}
