package config

import (
	"fmt"
	"net"
	"strconv"
)

type NetworkAddress struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetworkAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
