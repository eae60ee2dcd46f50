package api

// Config is the HTTP server configuration.
type Config struct {
	// Address to listen on (e.g., ":5000")
	ListenAddr string

	// AssetsDir serves the page, stylesheet and script from disk and reloads
	// the page template whenever it changes. Empty uses the embedded assets.
	AssetsDir string
}
