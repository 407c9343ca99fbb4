package main

import (
	"sort"
	"sync"
)

// ====== MAC Address Table (Learning) ======

// LearnOutcome classifies what learn() did with a source MAC
type LearnOutcome int

const (
	LEARN_NEW       LearnOutcome = iota // Address seen for the first time
	LEARN_REFRESHED                     // Address seen again on the same port
	LEARN_MOVED                         // Address moved to a different port
)

// MAC table entry represents a learned MAC address
type mac_table_entry struct {
	port      int   // Port the address was last seen on
	last_seen int64 // Last seen timestamp in seconds (caller-supplied)
}

// MAC table for the L2 switch. At most one entry per address.
type mac_table struct {
	entries map[MacAddr]*mac_table_entry
	mutex   sync.RWMutex // Mutex for thread-safe access from embedding hosts
}

// mac_table_row is one line of a table snapshot, for inspection/display
type mac_table_row struct {
	mac         MacAddr
	port        int
	age_seconds int64
}

// initializes an empty MAC table
func init_mac_table() *mac_table {
	return &mac_table{
		entries: make(map[MacAddr]*mac_table_entry),
	}
}

// learn records that traffic from mac arrived on port at time now.
// Returns the outcome and, for LEARN_MOVED, the port the address was
// previously attached to.
// The stored timestamp never decreases for a given address.
func (table *mac_table) learn(mac MacAddr, port int, now int64) (LearnOutcome, int) {
	table.mutex.Lock()
	defer table.mutex.Unlock()

	entry, exists := table.entries[mac]
	if !exists {
		table.entries[mac] = &mac_table_entry{
			port:      port,
			last_seen: now,
		}
		return LEARN_NEW, port
	}

	if entry.port != port {
		// Device moved - its latest traffic supersedes the stale location
		old_port := entry.port
		entry.port = port
		if now > entry.last_seen {
			entry.last_seen = now
		}
		return LEARN_MOVED, old_port
	}

	// Same port - refresh the timestamp
	if now > entry.last_seen {
		entry.last_seen = now
	}
	return LEARN_REFRESHED, port
}

// lookup returns the port mac was last seen on. Pure read: no
// timestamp refresh, no side effects.
func (table *mac_table) lookup(mac MacAddr) (int, bool) {
	table.mutex.RLock()
	defer table.mutex.RUnlock()

	entry, exists := table.entries[mac]
	if !exists {
		return 0, false
	}
	return entry.port, true
}

// evict_expired removes every entry whose age exceeds timeout_seconds
// (strictly greater - an entry exactly at the boundary survives).
// No-op when timeout_seconds <= 0. Returns the evicted addresses in
// ascending canonical order.
func (table *mac_table) evict_expired(now int64, timeout_seconds int64) []MacAddr {
	if timeout_seconds <= 0 {
		return nil
	}

	table.mutex.Lock()
	defer table.mutex.Unlock()

	var evicted []MacAddr
	for mac, entry := range table.entries {
		if now-entry.last_seen > timeout_seconds {
			delete(table.entries, mac)
			evicted = append(evicted, mac)
		}
	}

	sort.Slice(evicted, func(i, j int) bool {
		return evicted[i].String() < evicted[j].String()
	})

	return evicted
}

// clears all entries from the MAC table
func (table *mac_table) clear() {
	table.mutex.Lock()
	defer table.mutex.Unlock()

	table.entries = make(map[MacAddr]*mac_table_entry)
}

// size returns the number of learned addresses
func (table *mac_table) size() int {
	table.mutex.RLock()
	defer table.mutex.RUnlock()

	return len(table.entries)
}

// snapshot returns every entry as (mac, port, age) rows, in ascending
// canonical MAC order so display output is deterministic
func (table *mac_table) snapshot(now int64) []mac_table_row {
	table.mutex.RLock()
	defer table.mutex.RUnlock()

	rows := make([]mac_table_row, 0, len(table.entries))
	for mac, entry := range table.entries {
		rows = append(rows, mac_table_row{
			mac:         mac,
			port:        entry.port,
			age_seconds: now - entry.last_seen,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].mac.String() < rows[j].mac.String()
	})

	return rows
}
