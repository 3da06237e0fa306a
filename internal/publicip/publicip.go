/*
 Fleet, an orchestrator for ephemeral multiplayer game servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package publicip discovers the public IPv4 address of the host.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// DefaultEndpoints answer a GET request with the caller's address as plain text.
var DefaultEndpoints = []string{
	"https://api.ipify.org",
	"https://ipv4.icanhazip.com",
}

var ErrNotFound = errors.New("public ip not found")

// Discover asks every endpoint in turn and returns the first valid IPv4
// address. If none answers, the local address of an outbound UDP socket
// is used.
func Discover(ctx context.Context, client *http.Client) (string, error) {
	return discover(ctx, client, DefaultEndpoints, outboundAddr)
}

func discover(
	ctx context.Context,
	client *http.Client,
	endpoints []string,
	fallback func() (string, error),
) (string, error) {
	var errs []error
	for _, endpoint := range endpoints {
		ip, err := query(ctx, client, endpoint)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, err))
			continue
		}
		return ip, nil
	}

	ip, err := fallback()
	if err != nil {
		errs = append(errs, fmt.Errorf("outbound address: %w", err))
		return "", fmt.Errorf("%w: %w", ErrNotFound, errors.Join(errs...))
	}

	return ip, nil
}

func query(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return parseIPv4(strings.TrimSpace(string(body)))
}

func parseIPv4(s string) (string, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return "", fmt.Errorf("%q is not an ipv4 address", s)
	}
	return ip.To4().String(), nil
}

// outboundAddr returns the address the kernel would use to reach the
// internet. no packet is sent.
func outboundAddr() (string, error) {
	conn, err := net.Dial("udp4", "1.1.1.1:53")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("unexpected local address %s", conn.LocalAddr())
	}

	return parseIPv4(addr.IP.String())
}
