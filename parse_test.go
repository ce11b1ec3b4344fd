package cuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing prefix": "k2p0000ab1200010002",
		"too short":      "c0000ab12",
		"uppercase":      "cK2P0000AB1200010002",
		"bad character":  "ck2p_0000ab1200010002",
		"empty":          "",
	}
	for name, id := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(id)
			assert.Error(t, err)
			assert.False(t, IsValid(id))
		})
	}
}
