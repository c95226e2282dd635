// Package livereload pushes content changes to open pages.
//
// A Watcher follows the external content file with fsnotify. When the file
// changes and still validates, the new store replaces the old one in the
// shared content.Holder and the Hub sends ReloadMessage to every page
// connected on the websocket endpoint. Invalid edits are logged and ignored.
//
// # Usage Example
//
//	hub := livereload.NewHub()
//	w := livereload.NewWatcher(path, holder)
//	w.OnReload = func(err error) {
//	    if err == nil {
//	        hub.Broadcast(livereload.ReloadMessage)
//	    }
//	}
//	go w.Run(ctx)
//	router.Handle("/ws", hub)
package livereload
