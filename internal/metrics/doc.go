// Package metrics exposes Prometheus counters for the weighing guide page.
//
// Every collector lives on a private registry owned by a Metrics value, so
// several servers (and tests) can run in one process. Names are prefixed
// with "weighguide_":
//
//	page_views_total                  full page renders
//	modal_opens_total{step}           step popups opened
//	modal_dismissals_total{reason}    close, backdrop, escape or teardown
//	modal_rejections_total            opens for steps that do not exist
//	content_reloads_total{result}     ok or rejected
//	livereload_clients                connected live-reload websockets
//	http_request_duration_seconds     per route pattern and status code
//
// Handler serves the registry in the Prometheus text format.
package metrics
