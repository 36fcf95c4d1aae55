package crosswalk

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// Issue is one integrity problem found by Verify.
type Issue struct {
	VariantID string
	Message   string
}

func (i Issue) String() string {
	return i.Message
}

// Verify checks the integrity of a loaded store:
//   - an en_US or en_GB spelling must map to a single counterpart across the
//     spelling rows;
//   - every row needs at least one variant spelling;
//   - spelling rows need distinct en_US and en_GB cells.
//
// Rows rejected at load are checked too, so problems that Load silently
// dropped are reported here.
func Verify(s *Store) []Issue {
	var issues []Issue

	spelling := make([]Row, 0, s.Len(SpellingOnly))
	spelling = append(spelling, s.Rows(SpellingOnly)...)
	for _, row := range s.Rejected() {
		if row.Type == SpellingOnly {
			spelling = append(spelling, row)
		}
	}
	issues = append(issues, consistentPairs(spelling)...)

	for _, row := range s.Rejected() {
		issues = append(issues, Issue{VariantID: row.VariantID, Message: rejectReason(row)})
	}
	return issues
}

func consistentPairs(rows []Row) []Issue {
	var issues []Issue
	pairs := [][2]variant.Variant{{variant.EnUS, variant.EnGB}, {variant.EnGB, variant.EnUS}}
	for _, pair := range pairs {
		from, to := pair[0], pair[1]
		seen := make(map[string]string)
		for _, row := range rows {
			key := strings.ToLower(row.Get(from))
			if key == "" {
				continue
			}
			counterpart := strings.ToLower(row.Get(to))
			previous, ok := seen[key]
			if !ok {
				seen[key] = counterpart
				continue
			}
			if previous != "" && previous != counterpart {
				issues = append(issues, Issue{
					VariantID: row.VariantID,
					Message:   fmt.Sprintf("%s token '%s' maps to both '%s' and '%s'", from, key, previous, counterpart),
				})
			}
		}
	}
	return issues
}

func rejectReason(row Row) string {
	id := row.VariantID
	if id == "" {
		id = "?"
	}
	for _, v := range variant.All {
		if row.Get(v) != "" {
			return fmt.Sprintf("%s has identical or missing %s/%s spellings", id, variant.EnUS, variant.EnGB)
		}
	}
	return fmt.Sprintf("%s lacks variant spellings", id)
}
