package portal

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netconnect/internal/config"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const (
	detectTimeout = 5 * time.Second
	loginTimeout  = 10 * time.Second
)

// Client talks to a captive portal gateway.
type Client struct {
	portal config.Portal
	// httpClient is swappable so tests can point at httptest servers.
	httpClient *http.Client
}

// NewClient creates a portal client for the configured endpoints.
func NewClient(p config.Portal) *Client {
	return &Client{
		portal: p,
		httpClient: &http.Client{
			Timeout: detectTimeout,
			// Captive portals hijack the probe with a redirect to their
			// login page; seeing the redirect is the signal, so don't
			// follow it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Detect probes the detection URL and reports whether a captive portal is
// intercepting traffic. The probe endpoint serves "success" with status 200
// when the internet is reachable; anything else means a portal (or no
// connectivity at all).
func (c *Client) Detect() (bool, error) {
	resp, err := c.httpClient.Get(c.portal.DetectURL)
	if err != nil {
		return false, fmt.Errorf("portal detection probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return true, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return true, nil
	}
	return strings.TrimSpace(string(body)) != "success", nil
}

// Login posts the stored credentials to the portal login endpoint.
func (c *Client) Login(username, password string) error {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = " Logging in to captive portal..."
	s.Start()
	defer s.Stop()

	form := url.Values{
		"userId":      {username},
		"password":    {password},
		"serviceName": {c.portal.ServiceName},
	}

	client := &http.Client{Timeout: loginTimeout}
	resp, err := client.PostForm(c.portal.LoginURL, form)
	if err != nil {
		s.FinalMSG = color.RedString("✖ Captive portal login failed.\n")
		return fmt.Errorf("captive portal login failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.FinalMSG = color.RedString("✖ Captive portal login failed.\n")
		return fmt.Errorf("captive portal login returned status %d", resp.StatusCode)
	}

	s.FinalMSG = color.GreenString("✔ Captive portal login submitted.\n")
	return nil
}
