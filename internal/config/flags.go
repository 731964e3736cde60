package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-c/-config json file path with configs
//	-e service endpoint base URL
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second, 0 disables pacing
//	-rate-burst token bucket size
//	-max-attempts attempt budget per call, negative means unlimited
//	-backoff none|constant|exponential|fibonacci
//	-backoff-base first delay between attempts
//	-backoff-cap maximum delay between attempts
//	-d registry database DSN
//	-passphrase passphrase sealing stored keys
//	-w batch concurrency
//	-metrics-address Prometheus listener in format [host]:[port]
//	-log-file log destination
//	-api-key, -uo-id, -uo-type, -enc-key, -mac-key user object description
//	-i hex input of a single call
//	-f file with one hex input per line
//	-save store the user object in the registry
//	-op aes-encrypt|aes-decrypt|rsa|hmac|random, empty for raw ProcessData
//	-n byte count of the random operation
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg            StructuredConfig
		metricsAddress NetAddress
	)

	fs := flag.NewFlagSet("uoclient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.Adapter.Endpoint, "e", "", "Service endpoint base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "rate-limit", 0, "Requests per second, 0 disables pacing")
	fs.IntVar(&cfg.Adapter.RateBurst, "rate-burst", 0, "Rate limiter burst")

	fs.IntVar(&cfg.Retry.MaxAttempts, "max-attempts", 0, "Attempt budget per call, negative means unlimited")
	fs.StringVar(&cfg.Retry.Backoff, "backoff", "", "Backoff kind: constant, exponential or fibonacci")
	fs.DurationVar(&cfg.Retry.BackoffBase, "backoff-base", 0, "First delay between attempts")
	fs.DurationVar(&cfg.Retry.BackoffCap, "backoff-cap", 0, "Maximum delay between attempts")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Registry database DSN")
	fs.StringVar(&cfg.App.StorePassphrase, "passphrase", "", "Passphrase sealing stored keys")
	fs.IntVar(&cfg.Workers.Concurrency, "w", 0, "Batch concurrency")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener host:port")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")

	fs.StringVar(&cfg.UserObject.APIKey, "api-key", "", "API key")
	fs.StringVar(&cfg.UserObject.ID, "uo-id", "", "User object id")
	fs.StringVar(&cfg.UserObject.Type, "uo-type", "", "User object type descriptor")
	fs.StringVar(&cfg.UserObject.EncKey, "enc-key", "", "Hex encryption key")
	fs.StringVar(&cfg.UserObject.MacKey, "mac-key", "", "Hex MAC key")

	fs.StringVar(&cfg.Call.Input, "i", "", "Hex request data")
	fs.StringVar(&cfg.Call.InputFile, "f", "", "File with one hex request per line")
	fs.BoolVar(&cfg.Call.Save, "save", false, "Store the user object in the registry")
	fs.StringVar(&cfg.Call.Op, "op", "", "Typed operation: aes-encrypt, aes-decrypt, rsa, hmac or random")
	fs.IntVar(&cfg.Call.RandomLength, "n", 0, "Byte count of the random operation")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Metrics.Address = metricsAddress.String()
	return &cfg, nil
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
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
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
