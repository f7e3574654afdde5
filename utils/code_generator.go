package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// TeamCodePrefix is the fixed prefix of every generated team code.
const TeamCodePrefix = "ENIG"

// GenerateTeamCode produces a collision-candidate code of the shape
// ENIG-XXXXXX where XXXXXX is 3 random bytes rendered as uppercase hex.
// Uniqueness is enforced by the caller against the team code index.
func GenerateTeamCode() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return fmt.Sprintf("%s-%s", TeamCodePrefix, strings.ToUpper(fmt.Sprintf("%x", buf)))
}
