package postgre

import (
	"fmt"
	"strings"

	repo "day-planner/internal/planner/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.CalendarEventID != "" {
		conditions = append(conditions, fmt.Sprintf("calendar_event_id = $%d", idx))
		args = append(args, opt.CalendarEventID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
