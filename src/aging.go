package main

// ====== MAC Table Aging ======

// sweep_aging evicts MAC table entries unseen for longer than the
// configured aging timeout. No-op when aging is disabled
// (AgingTimeout <= 0). Caller-driven: now is an explicit timestamp,
// never an internal timer, so sweeps are deterministic and testable.
// Returns the evicted addresses for reporting.
func (sw *Switch) sweep_aging(now int64) []MacAddr {
	if sw.config.AgingTimeout <= 0 {
		return nil
	}

	evicted := sw.table.evict_expired(now, sw.config.AgingTimeout)
	for _, mac := range evicted {
		LogInfo("L2Switch: Aged out MAC entry %s", mac.String())
	}

	if len(evicted) > 0 {
		LogInfo("L2Switch: Cleaned up %d expired MAC entries", len(evicted))
	}

	return evicted
}
