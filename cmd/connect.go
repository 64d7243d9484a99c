package cmd

import (
	"fmt"
	"io"
	"time"

	"netconnect/internal/config"
	"netconnect/internal/logging"
	"netconnect/internal/portal"
	"netconnect/internal/profile"
	"netconnect/internal/waiter"
	"netconnect/internal/wifi"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	connectTimeout  int
	connectNoPortal bool
	connectQuiet    bool
)

// portalClient is the slice of portal.Client the connect flow needs,
// extracted so tests can substitute a fake.
type portalClient interface {
	Detect() (bool, error)
	Login(username, password string) error
}

var newPortalClient = func(p config.Portal) portalClient {
	return portal.NewClient(p)
}

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect [ssid]",
	Short: "Connects to a known WiFi network and logs in to its captive portal",
	Long: `Connects to the named network, or, when no SSID is given, scans and picks
the strongest visible network that has a saved profile. After associating it
verifies the connection, detects a captive portal and submits the stored
credentials.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: ProfileNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		if connectQuiet {
			// Boot-time runs have no terminal; the log file has the story.
			color.Output = io.Discard
		}

		cfg, err := config.New()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(cfg)
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.GetLogPath()); err != nil {
			return err
		}
		defer logging.Sync()

		ssid := ""
		if len(args) == 1 {
			ssid = args[0]
		}
		if ssid == "" {
			ssid, err = pickNetwork(cfg, settings)
			if err != nil {
				return err
			}
		}

		p, err := profile.Load(cfg, ssid)
		if err != nil {
			return fmt.Errorf("no profile for %q (run `netconnect profile add` first): %w", ssid, err)
		}

		conn, err := wifi.New(p.Interface)
		if err != nil {
			return err
		}

		attemptID := uuid.NewString()
		logging.Info("connect attempt started",
			zap.String("attempt_id", attemptID),
			zap.String("ssid", ssid),
		)

		color.Cyan("i Connecting to WiFi: %s ...", ssid)
		if err := conn.Connect(ssid, p.Password); err != nil {
			logging.Error("connect failed",
				zap.String("attempt_id", attemptID),
				zap.String("ssid", ssid),
				zap.Error(err),
			)
			return fmt.Errorf("failed to connect to %s: %w", ssid, err)
		}

		timeout := time.Duration(settings.ConnectTimeoutSec) * time.Second
		if connectTimeout > 0 {
			timeout = time.Duration(connectTimeout) * time.Second
		}
		if err := waiter.ForSSID(conn, ssid, timeout); err != nil {
			// Some drivers report association late; proceed to the portal
			// check anyway, matching what a human would do.
			color.Yellow("! Could not verify the WiFi connection, proceeding anyway...")
			logging.Warn("association not verified",
				zap.String("attempt_id", attemptID),
				zap.Error(err),
			)
		}

		if connectNoPortal {
			color.Green("✔ Connected to %s.", ssid)
			logging.Info("connect attempt finished",
				zap.String("attempt_id", attemptID),
				zap.String("ssid", ssid),
				zap.Bool("portal_login", false),
			)
			return nil
		}

		if err := portalLogin(settings, p, attemptID); err != nil {
			return err
		}

		logging.Info("connect attempt finished",
			zap.String("attempt_id", attemptID),
			zap.String("ssid", ssid),
			zap.Bool("portal_login", true),
		)
		return nil
	},
}

// pickNetwork scans and returns the best known network: the configured
// default when visible, otherwise the strongest visible network that has a
// saved profile.
func pickNetwork(cfg *config.Config, settings *config.Settings) (string, error) {
	profiles, err := profile.GetAll(cfg)
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("no saved networks (run `netconnect profile add` first)")
	}

	conn, err := wifi.New("")
	if err != nil {
		return "", err
	}
	networks, err := conn.Scan()
	if err != nil {
		return "", fmt.Errorf("scan failed: %w", err)
	}

	var best string
	for _, n := range networks {
		if _, known := profiles[n.SSID]; !known {
			continue
		}
		if n.SSID == settings.DefaultSSID {
			return n.SSID, nil
		}
		if best == "" {
			best = n.SSID // networks are sorted strongest first
		}
	}
	if best == "" {
		return "", fmt.Errorf("none of the %d saved networks are visible", len(profiles))
	}
	return best, nil
}

// portalLogin runs captive portal detection and, when one is in the way,
// submits the profile's portal credentials.
func portalLogin(settings *config.Settings, p *profile.Profile, attemptID string) error {
	pc := newPortalClient(settings.Portal)

	captive, err := pc.Detect()
	if err != nil {
		// The probe often fails while the portal still blocks DNS or drops
		// traffic; treat that the same as a detected portal.
		color.Yellow("! Connectivity probe failed (%v), assuming captive portal.", err)
		captive = true
	}
	if !captive {
		color.Green("✔ Already online. No captive portal detected.")
		return nil
	}

	if !p.HasPortalCredentials() {
		return fmt.Errorf("captive portal detected but no portal credentials stored for %q", p.SSID)
	}

	color.Cyan("i Attempting to log in to the captive portal...")
	if err := pc.Login(p.Username, p.PortalPwd); err != nil {
		logging.Error("portal login failed",
			zap.String("attempt_id", attemptID),
			zap.String("ssid", p.SSID),
			zap.Error(err),
		)
		return err
	}

	color.Green("✔ Connected successfully without browser pop-up!")
	return nil
}

func init() {
	connectCmd.Flags().IntVar(&connectTimeout, "timeout", 0, "seconds to wait for association (defaults to settings)")
	connectCmd.Flags().BoolVar(&connectNoPortal, "no-portal", false, "skip captive portal detection and login")
	connectCmd.Flags().BoolVar(&connectQuiet, "quiet", false, "suppress terminal output (used by the startup entry)")
	rootCmd.AddCommand(connectCmd)
}
