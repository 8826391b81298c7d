package app

// Config holds runtime wiring options for building the app.
type Config struct {
	PubPath  string // public key file path, e.g. ss.pub
	PrivPath string // private key file path, e.g. ss.priv
}
