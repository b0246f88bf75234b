package main

import (
	"net"
	"net/netip"
	"net/url"
)

func isIP4Host(val string) bool {
	addr, err := netip.ParseAddr(val)

	return err == nil && addr.Is4()
}

func isTCPAddr(val string) bool {
	host, _, err := net.SplitHostPort(val)
	if err != nil {
		return false
	}

	if _, err := netip.ParseAddr(host); err != nil {
		return false
	}

	_, err = net.ResolveTCPAddr("tcp", val)

	return err == nil
}

func isHTTPURL(val string) bool {
	u, err := url.Parse(val)

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isLogLevel(val string) bool {
	return val == "debug" || val == "info" || val == "warn" || val == "error"
}
