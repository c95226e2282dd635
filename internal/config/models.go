package config

// Settings represents the entire user configuration file.
// Every field is a default; command-line flags override it.
type Settings struct {
	Version int          `yaml:"version"`
	Serve   *ServePrefs  `yaml:"serve,omitempty"`
	Browse  *BrowsePrefs `yaml:"browse,omitempty"`
	// LogLevel applies to every command unless --log-level is given.
	LogLevel string `yaml:"log_level,omitempty"`
}

// ServePrefs holds defaults for the web page server.
type ServePrefs struct {
	Host         string `yaml:"host"`                    // Interface to bind
	Port         int    `yaml:"port"`                    // TCP port
	AssetsDir    string `yaml:"assets_dir,omitempty"`    // Directory served under /pitcher/
	Content      string `yaml:"content,omitempty"`       // External content file (empty = embedded)
	Watch        bool   `yaml:"watch"`                   // Reload content on change and push to open pages
	Advertise    bool   `yaml:"advertise"`               // Publish the page over mDNS
	InstanceName string `yaml:"instance_name,omitempty"` // mDNS instance name
}

// BrowsePrefs holds defaults for the terminal browser.
type BrowsePrefs struct {
	Content string `yaml:"content,omitempty"`
	LogFile string `yaml:"log_file,omitempty"` // Where logs go while the TUI owns the screen
	Mouse   bool   `yaml:"mouse"`              // Enable mouse clicks (backdrop dismissal)
}

const (
	// DefaultHost is the bind address used when nothing is configured.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the port used when nothing is configured.
	DefaultPort = 8080
	// DefaultInstanceName is the mDNS instance name used when nothing is configured.
	DefaultInstanceName = "Weighing System Guide"
)

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Serve: &ServePrefs{
			Host:         DefaultHost,
			Port:         DefaultPort,
			AssetsDir:    "public",
			InstanceName: DefaultInstanceName,
		},
		Browse: &BrowsePrefs{
			Mouse: true,
		},
	}
}

// applyDefaults fills sections missing from a partially written file.
func (s *Settings) applyDefaults() {
	def := NewSettings()
	if s.Serve == nil {
		s.Serve = def.Serve
	}
	if s.Browse == nil {
		s.Browse = def.Browse
	}
	if s.Serve.Host == "" {
		s.Serve.Host = DefaultHost
	}
	if s.Serve.Port == 0 {
		s.Serve.Port = DefaultPort
	}
	if s.Serve.InstanceName == "" {
		s.Serve.InstanceName = DefaultInstanceName
	}
}
