// Package server serves the weighing reference page over HTTP.
//
// # Routes
//
//	GET /                  the page; ?step=N opens the step popup
//	GET /api/health        {"status":"ok","message":"weighguide server is running"}
//	GET /api/content       the whole content document as JSON
//	GET /api/steps/{step}  one step and its detail; 404 when the step has none
//	GET /pitcher/*         screenshots from the assets directory
//	GET /static/*          stylesheet and scripts compiled into the binary
//	GET /ws                live reload (only with Watch)
//	GET /metrics           Prometheus metrics
//
// Every /api route answers with "Access-Control-Allow-Origin: *".
//
// # Popup state
//
// The page is rendered on the server, so the popup state lives in the URL.
// Each request builds a fresh selection.Modal from the query string and
// closes it when the response is written. The close control, the backdrop
// and the escape key listener link back with "&dismiss=<reason>", which
// is counted in weighguide_modal_dismissals_total.
//
// # Usage Example
//
//	srv, err := server.New(&server.Config{
//	    Host:      "0.0.0.0",
//	    Port:      8080,
//	    AssetsDir: "public",
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Start blocks until SIGINT/SIGTERM or a listener error
//	return srv.Start()
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the server withdraws its mDNS record, stops the
// content watcher, disconnects live reload clients and lets in-flight
// requests finish.
package server
