package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/m-217/packup/packup/catalog"
	cm "github.com/m-217/packup/packup/commandmanager"
	"github.com/m-217/packup/packup/config"
	pm "github.com/m-217/packup/packup/packagemanager"
	"github.com/m-217/packup/packup/probe"
)

var (
	log = logrus.New()

	cfgFile            string
	hostnameFlag       string
	usernameFlag       string
	sudoFlag           bool
	debugFlag          bool
	passwordPrompt     bool
	keyPassPrompt      bool
	sudoPasswordPrompt bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "packup",
	Short: "One front end for every package manager",
	Long: `packup drives the package managers already on a host behind a single
interface: install a package through the first manager that can serve it,
list everything installed, and see what the host has to work with.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to INI config file")
	rootCmd.PersistentFlags().StringVar(&hostnameFlag, "hostname", "", "host to operate on (default: local machine)")
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "username for SSH connections")
	rootCmd.PersistentFlags().BoolVar(&sudoFlag, "sudo", false, "allow privilege elevation for system package managers")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&passwordPrompt, "password", false, "prompt for an SSH password")
	rootCmd.PersistentFlags().BoolVar(&keyPassPrompt, "keypass", false, "prompt for an SSH key passphrase")
	rootCmd.PersistentFlags().BoolVar(&sudoPasswordPrompt, "sudo-password", false, "prompt for the sudo password")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(detectCmd)
}

func initConfig() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugFlag {
		log.SetLevel(logrus.DebugLevel)
		log.Debug("Debug mode enabled")
	}

	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			log.WithError(err).Fatal("Failed to load config file")
		}
	}

	// Flags win over the config file.
	if hostnameFlag != "" {
		cfg.Hostname = hostnameFlag
	}
	if usernameFlag != "" {
		cfg.Username = usernameFlag
	}
	if sudoFlag {
		cfg.AllowSudo = true
	}
}

// environment bundles everything a subcommand needs to talk to one host.
type environment struct {
	manager  *cm.UnixCommandManager
	prober   probe.Prober
	host     catalog.HostContext
	backends []pm.Backend
}

func buildEnvironment(ctx context.Context) (*environment, error) {
	creds := cm.Credentials{User: usernameOrCurrent()}
	if passwordPrompt {
		creds.Password = readSecret("Enter the password: ")
	}
	if keyPassPrompt {
		creds.KeyPassphrase = readSecret("Enter the key passphrase: ")
	}
	if sudoPasswordPrompt {
		creds.SudoPassword = readSecret("Enter the sudo password: ")
	}

	manager := &cm.UnixCommandManager{
		Hostname:    cfg.Hostname,
		SSHClient:   cm.RealSSHDialer{},
		AllowSudo:   cfg.AllowSudo,
		Credentials: creds,
	}

	var detector catalog.Detector = catalog.LocalDetector{}
	var prober probe.Prober = probe.PathProber{}
	if remote(cfg.Hostname) {
		log.WithField("host", cfg.Hostname).Debug("Operating on remote host")
		detector = &catalog.CommandDetector{CommandManager: manager}
		prober = &probe.CommandProber{CommandManager: manager}
	}

	host, err := detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detecting host platform: %w", err)
	}
	log.WithFields(logrus.Fields{
		"os": host.OS, "distro": host.Distro, "family": host.Family,
	}).Debug("Detected host platform")

	var backends []pm.Backend
	for _, name := range catalog.Candidates(host) {
		backend, ok := pm.New(name, manager)
		if !ok {
			continue
		}
		backends = append(backends, backend)
	}

	return &environment{
		manager:  manager,
		prober:   probe.Cached(prober),
		host:     host,
		backends: backends,
	}, nil
}

// defaultConfigPath returns ~/.config/packup/packup.ini when it exists.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "packup", "packup.ini")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func remote(hostname string) bool {
	switch hostname {
	case "", "localhost", "127.0.0.1":
		return false
	}
	return true
}

func usernameOrCurrent() string {
	if cfg.Username != "" {
		return cfg.Username
	}
	return os.Getenv("USER")
}

func readSecret(prompt string) string {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.WithError(err).Fatal("Failed to read secret")
	}
	return string(secret)
}

// logrusAdapter lets the library packages log through the CLI's logrus
// instance instead of their default slog handler.
type logrusAdapter struct{ log *logrus.Logger }

func (l logrusAdapter) fields(args []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		f[key] = args[i+1]
	}
	return f
}

func (l logrusAdapter) Info(msg string, args ...interface{}) {
	l.log.WithFields(l.fields(args)).Info(msg)
}

func (l logrusAdapter) Debug(msg string, args ...interface{}) {
	l.log.WithFields(l.fields(args)).Debug(msg)
}

func (l logrusAdapter) Warn(msg string, args ...interface{}) {
	l.log.WithFields(l.fields(args)).Warn(msg)
}

func (l logrusAdapter) Error(msg string, args ...interface{}) {
	l.log.WithFields(l.fields(args)).Error(msg)
}
