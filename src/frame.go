package main

import (
	"fmt"
	"strings"
)

// ====== Ethernet Frame Model ======

// MAC address size in bytes
const MAC_ADDR_SIZE = 6

// EtherType values (common protocols)
const (
	ETHERTYPE_IP   = 0x0800 // IPv4
	ETHERTYPE_ARP  = 0x0806 // ARP
	ETHERTYPE_IPV6 = 0x86DD // IPv6
)

// MacAddr is a 48-bit Ethernet hardware address
type MacAddr [MAC_ADDR_SIZE]byte

// Broadcast MAC address (FF:FF:FF:FF:FF:FF)
var BROADCAST_MAC = MacAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// String returns the canonical textual form: six colon-separated
// two-digit uppercase hex groups
func (mac MacAddr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}

// checks if a MAC address is broadcast (FF:FF:FF:FF:FF:FF)
func is_mac_broadcast(mac MacAddr) bool {
	return mac == BROADCAST_MAC
}

// parse_mac_addr parses the textual MAC form ("AA:BB:CC:DD:EE:FF",
// case-insensitive) into a MacAddr.
// Returns ErrInvalidAddress if the string is malformed.
func parse_mac_addr(s string) (MacAddr, error) {
	var mac MacAddr

	groups := strings.Split(s, ":")
	if len(groups) != MAC_ADDR_SIZE {
		return mac, fmt.Errorf("%w: %q (expected 6 colon-separated hex groups)", ErrInvalidAddress, s)
	}

	for i, group := range groups {
		if len(group) != 2 {
			return mac, fmt.Errorf("%w: %q (group %d must be two hex digits)", ErrInvalidAddress, s, i+1)
		}

		hi, ok1 := hex_digit_value(group[0])
		lo, ok2 := hex_digit_value(group[1])
		if !ok1 || !ok2 {
			return mac, fmt.Errorf("%w: %q (group %d is not hexadecimal)", ErrInvalidAddress, s, i+1)
		}

		mac[i] = hi<<4 | lo
	}

	return mac, nil
}

func hex_digit_value(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Frame represents a simplified Ethernet frame (OSI Layer 2).
// Immutable once constructed; callers build one per transmission.
type Frame struct {
	src_mac   MacAddr // Source MAC address
	dst_mac   MacAddr // Destination MAC address
	ethertype uint16  // Protocol tag (e.g. 0x0800 for IPv4)
	payload   []byte  // Opaque payload data
}

// new_frame constructs a Frame from already-parsed MAC addresses
func new_frame(src MacAddr, dst MacAddr, ethertype uint16, payload []byte) *Frame {
	frame := &Frame{
		src_mac:   src,
		dst_mac:   dst,
		ethertype: ethertype,
	}
	if len(payload) > 0 {
		frame.payload = make([]byte, len(payload))
		copy(frame.payload, payload)
	}
	return frame
}

// new_frame_from_strings constructs a Frame from textual MAC addresses.
// Returns ErrInvalidAddress if either address is malformed.
func new_frame_from_strings(src string, dst string, ethertype uint16, payload []byte) (*Frame, error) {
	src_mac, err := parse_mac_addr(src)
	if err != nil {
		return nil, err
	}

	dst_mac, err := parse_mac_addr(dst)
	if err != nil {
		return nil, err
	}

	return new_frame(src_mac, dst_mac, ethertype, payload), nil
}
