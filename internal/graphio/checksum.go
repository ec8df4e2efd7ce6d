package graphio

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// ComputeChecksum computes the SHA-256 checksum of the node payloads.
//
// Each node contributes its ID followed by its values as little-endian
// IEEE 754 bits, so the checksum changes when values move between nodes.
func ComputeChecksum(nodes []Node) string {
	h := sha256.New()
	var buf [8]byte
	for i := range nodes {
		binary.LittleEndian.PutUint64(buf[:], nodes[i].ID)
		h.Write(buf[:])
		for _, v := range nodes[i].Values {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateChecksum compares the checksum of doc's nodes against the stored
// one. Documents without a stored checksum always pass.
func ValidateChecksum(doc *Document) error {
	if doc.Checksum == "" {
		return nil
	}
	if ComputeChecksum(doc.Nodes) != doc.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}
