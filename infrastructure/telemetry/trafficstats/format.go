package trafficstats

import (
	"fmt"
	"strconv"
)

var binaryUnits = [...]string{"KiB", "MiB", "GiB", "TiB"}

// formatBytes renders n with binary prefixes: "512 B", "2.0 KiB", "1.5 MiB".
func formatBytes(n uint64) string {
	if n < 1024 {
		return strconv.FormatUint(n, 10) + " B"
	}
	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(binaryUnits)-1 {
		value /= 1024
		unit++
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + binaryUnits[unit]
}

func messageCount(n uint64) string {
	if n == 1 {
		return "1 message"
	}
	return strconv.FormatUint(n, 10) + " messages"
}

// Summary renders totals in one line, e.g. for the exit report of a client run.
func Summary(s Snapshot) string {
	return fmt.Sprintf("rx %s in %s, tx %s in %s",
		formatBytes(s.RXBytesTotal), messageCount(s.RXMessagesTotal),
		formatBytes(s.TXBytesTotal), messageCount(s.TXMessagesTotal))
}
