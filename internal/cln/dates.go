//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cln

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

//
// DATE RECOVERY
//

// the Gale metadata is hand-keyed from mastheads and comes in every shape the
// nineteenth century could devise; parse what we can, flag the rest

var datelayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan. 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 January, 2006",
	"01/02/2006",
	"2006",
}

var yearinstring = regexp.MustCompile(`\b(1[6-9][0-9][0-9]|20[0-1][0-9])\b`)

// ParseReviewDate - best-effort date; ok is false when nothing sane can be recovered
func ParseReviewDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, l := range datelayouts {
		if d, e := time.Parse(l, raw); e == nil {
			if saneyear(d.Year()) {
				return d, true
			}
			return time.Time{}, false
		}
	}

	// last resort: any plausible four-digit year anywhere in the field
	if m := yearinstring.FindString(raw); m != "" {
		y, _ := strconv.Atoi(m)
		if saneyear(y) {
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func saneyear(y int) bool {
	return y >= vv.MINSANEYEAR && y <= vv.MAXSANEYEAR
}
