package cart

import (
	"fmt"

	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
)

// SelectionViolationDetail is returned to callers when a selection fails
// validation against the item's option groups.
type SelectionViolationDetail struct {
	OptionID string `json:"option_id"`
	Reason   string `json:"reason"`
}

// ValidateSelections checks candidate selections against the catalog item:
// every referenced group and choice must exist, required single-select groups
// need exactly one choice, and non-multi-select groups allow at most one.
func ValidateSelections(item catalog.Item, selections []SelectedOption) error {
	var violations []SelectionViolationDetail

	selected := make(map[string][]string, len(selections))
	for _, selection := range selections {
		group, ok := item.FindOption(selection.OptionID)
		if !ok {
			violations = append(violations, SelectionViolationDetail{
				OptionID: selection.OptionID,
				Reason:   "unknown option group",
			})
			continue
		}
		if _, dup := selected[selection.OptionID]; dup {
			violations = append(violations, SelectionViolationDetail{
				OptionID: selection.OptionID,
				Reason:   "option group selected more than once",
			})
			continue
		}
		selected[selection.OptionID] = selection.ChoiceIDs

		seen := map[string]struct{}{}
		for _, choiceID := range selection.ChoiceIDs {
			if _, ok := group.FindChoice(choiceID); !ok {
				violations = append(violations, SelectionViolationDetail{
					OptionID: selection.OptionID,
					Reason:   fmt.Sprintf("unknown choice %s", choiceID),
				})
				continue
			}
			if _, dup := seen[choiceID]; dup {
				violations = append(violations, SelectionViolationDetail{
					OptionID: selection.OptionID,
					Reason:   fmt.Sprintf("duplicate choice %s", choiceID),
				})
			}
			seen[choiceID] = struct{}{}
		}

		if !group.MultiSelect && len(seen) > 1 {
			violations = append(violations, SelectionViolationDetail{
				OptionID: selection.OptionID,
				Reason:   "option allows a single choice",
			})
		}
	}

	for _, group := range item.Options {
		if !group.Required || group.MultiSelect {
			continue
		}
		if len(selected[group.ID]) != 1 {
			violations = append(violations, SelectionViolationDetail{
				OptionID: group.ID,
				Reason:   "exactly one choice required",
			})
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid selections for %d option group(s)", len(violations))).WithDetails(map[string]any{
		"violations": violations,
	})
}
