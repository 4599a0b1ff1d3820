package lgart

import (
	"fmt"
	"hash/crc64"
	"os/exec"
	"strings"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Stamp identifies one set of generation parameters in output filenames.
type Stamp struct {
	sum uint64
}

// NewStamp hashes key, normally the encoded parameters.
func NewStamp(key []byte) Stamp {
	return Stamp{sum: crc64.Checksum(key, crcTable)}
}

// Sum returns the raw checksum
func (s Stamp) Sum() uint64 {
	return s.sum
}

// GetFilename returns a string to use for this file
func (s Stamp) GetFilename(prefix, ext string) string {
	if hash := getGitHash(); hash != "" {
		return fmt.Sprintf("%s%s-%x%s", prefix, hash, s.sum, ext)
	}
	return fmt.Sprintf("%s%x%s", prefix, s.sum, ext)
}

func getGitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
