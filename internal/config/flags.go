package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-public directory with the SPA and clients/*.json
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cache-dsn client config cache DSN
//	-cache-ttl client config cache TTL (e.g., "1h")
//	-mail-base-url mail provider API root
//	-default-client tenant forced when the hostname names none
//	-server playbook server URL used by the preview client
//	-page-url page URL the preview client resolves the tenant from
//	-trust-proxy take client IPs from X-Forwarded-For / X-Real-IP
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var publicDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var cacheDSN string
	var cacheTTL time.Duration
	var mailBaseURL string
	var defaultClient string
	var adapterAddress string
	var pageURL string
	var trustProxy bool

	fs := flag.NewFlagSet("playbook", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&publicDir, "public", "", "Directory with the SPA and clients/*.json")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cacheDSN, "cache-dsn", "", "Client config cache DSN (empty for memory)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Client config cache TTL (e.g., 1h)")
	fs.StringVar(&mailBaseURL, "mail-base-url", "", "Mail provider API root")
	fs.StringVar(&defaultClient, "default-client", "", "Tenant used when the hostname names none")
	fs.StringVar(&adapterAddress, "server", "", "Playbook server URL used by the preview client")
	fs.StringVar(&pageURL, "page-url", "", "Page URL the preview client resolves the tenant from")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Trust X-Forwarded-For / X-Real-IP from a reverse proxy")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultClient: defaultClient,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PublicDir:      publicDir,
			TrustProxy:     trustProxy,
		},
		Storage: Storage{
			Cache: Cache{
				DSN: cacheDSN,
				TTL: cacheTTL,
			},
		},
		Mail: Mail{
			BaseURL: mailBaseURL,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Preview: Preview{
			PageURL: pageURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
