// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package recommend

import "strings"

// ExternalIDWidth is the length of every external article ID.
const ExternalIDWidth = 10

// NormalizeExternalID left-pads a stored external ID with zeros to
// ExternalIDWidth. IDs that are empty, longer than the width or not purely
// decimal are rejected.
func NormalizeExternalID(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) > ExternalIDWidth {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	return strings.Repeat("0", ExternalIDWidth-len(s)) + s, true
}
