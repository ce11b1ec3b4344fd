package cuid

// fingerprint combines a process component with a hostname checksum into
// one 4-character base-36 block. The process component occupies the two
// high digits, the hostname checksum the two low digits, so identifiers
// from different processes on one host differ in the first half and
// identifiers from different hosts differ in the second.
func fingerprint(pid int, hostname string) string {
	process := (pid % (base * base)) * (base * base)

	sum := base + len(hostname)
	for i := 0; i < len(hostname); i++ {
		sum += int(hostname[i])
	}
	host := sum % (base * base)

	return encodeBlock(uint64(process + host))
}
