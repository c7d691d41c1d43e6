package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pagesifthttp "github.com/pagesift/pagesift/http"
)

// Run binds one document and serves the SMART_SCRAPE boundary until the
// context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	scraper, closer, err := deps.NewScraper(c.URL)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	srv := &http.Server{
		Addr:    c.Addr,
		Handler: pagesifthttp.NewHandler(scraper, deps.Logger),
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("serving extraction boundary", "addr", c.Addr, "url", c.URL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
