package config

import (
	"errors"
	"flag"
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

// String returns the address in "host:port" format.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" value into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(value)
	if err != nil {
		// allow a bare ":8080" shorthand to fall through to SplitHostPort,
		// everything else is a format error
		return errors.New("address must be in host:port format")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-backend storage backend selector ("file" or "postgres")
//	-f items document path (file backend)
//	-p photo cache directory
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-db-connect-attempts startup connectivity probe attempts
//	-db-connect-delay delay between connectivity probes
//	-sweep-interval orphan photo sweep period (0 disables)
//	-sweep-min-age minimum file age before an orphan is removed
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var backend string
	var itemsFile string
	var photoDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var connectAttempts uint
	var connectDelay time.Duration
	var sweepInterval time.Duration
	var sweepMinAge time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&backend, "backend", "", `Storage backend ("file" or "postgres")`)
	flag.StringVar(&itemsFile, "f", "", "Items document path (file backend)")
	flag.StringVar(&photoDir, "p", "", "Photo cache directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.UintVar(&connectAttempts, "db-connect-attempts", 0, "Database startup probe attempts")
	flag.DurationVar(&connectDelay, "db-connect-delay", 0, "Delay between database startup probes")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Orphan photo sweep period (0 disables)")
	flag.DurationVar(&sweepMinAge, "sweep-min-age", 0, "Minimum file age before orphan removal")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN:             databaseDSN,
				ConnectAttempts: connectAttempts,
				ConnectDelay:    connectDelay,
			},
			Files: Files{
				ItemsFile: itemsFile,
				PhotoDir:  photoDir,
			},
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			SweepMinAge:   sweepMinAge,
		},
		JSONFilePath: strings.TrimSpace(jsonConfigPath),
	}
}
