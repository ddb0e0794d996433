// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-a backend address in format [host]:[port]
//	-d sqlite DSN
//	-c/-config json file path with configs
//	-request-timeout backend request timeout (e.g., "15s")
//	-refetch-interval background refetch interval (e.g., "5s")
//	-expiry-check-interval session expiry check interval (e.g., "10s")
//	-rsa-bits sharing key size
//	-kdf-time, -kdf-memory, -kdf-threads Argon2id parameters
//	-log-dir log directory
//	-log-level log level
func ParseFlags() *StructuredConfig {
	var backendAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refetchInterval time.Duration
	var expiryCheckInterval time.Duration
	var rsaBits int
	var kdfTime, kdfMemory, kdfThreads uint
	var logDir, logLevel string

	flag.Var(&backendAddress, "a", "Backend net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local sqlite DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s)")
	flag.DurationVar(&refetchInterval, "refetch-interval", 0, "Background refetch interval (e.g., 5s)")
	flag.DurationVar(&expiryCheckInterval, "expiry-check-interval", 0, "Session expiry check interval (e.g., 10s)")
	flag.IntVar(&rsaBits, "rsa-bits", 0, "RSA modulus size of new sharing key pairs")
	flag.UintVar(&kdfTime, "kdf-time", 0, "Argon2id iterations")
	flag.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory in KiB")
	flag.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism")
	flag.StringVar(&logDir, "log-dir", "", "Log directory")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			KDFTime:    uint32(kdfTime),
			KDFMemory:  uint32(kdfMemory),
			KDFThreads: uint8(kdfThreads),
			RSABits:    rsaBits,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Session:      Session{ExpiryCheckInterval: expiryCheckInterval},
		Workers:      Workers{RefetchInterval: refetchInterval},
		Log:          Log{Dir: logDir, Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Hosts other than "localhost" must be IP addresses.
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

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
